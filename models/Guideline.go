package models

import "time"

// Guideline is one displayable rule line. Only active guidelines are visible
// on the public site, rendered in ascending display order.
type Guideline struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	Content      string    `gorm:"type:varchar(1000);not null" json:"content"`
	DisplayOrder int       `gorm:"not null;column:display_order" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
