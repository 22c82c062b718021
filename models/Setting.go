package models

import "time"

// SettingsID is the fixed primary key of the single settings row. Reads and
// writes always target this row; a second row is never inserted.
const SettingsID = 1

// Setting describes the active competition shown on the public site
type Setting struct {
	ID          int       `gorm:"primary_key" json:"-"`
	Theme       string    `gorm:"type:varchar(255);not null" json:"theme"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	TargetDate  time.Time `gorm:"not null;column:target_date" json:"target_date"`
	UpdatedAt   time.Time `json:"updated_at"`
}
