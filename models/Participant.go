package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Participant represents a competition entry ranked by Instagram likes
type Participant struct {
	ID               string    `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	VideoTitle       string    `gorm:"type:varchar(255);not null;column:video_title" json:"video_title"`
	InstagramPostID  string    `gorm:"type:varchar(255);not null;unique;column:instagram_post_id" json:"instagram_post_id"`
	InstagramPostURL string    `gorm:"type:varchar(255);not null;column:instagram_post_url" json:"instagram_post_url"`
	ThumbnailURL     *string   `gorm:"type:varchar(255);column:thumbnail_url" json:"thumbnail_url"`
	Likes            int       `gorm:"not null;default:0" json:"likes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
