package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog is an artist-authored post moderated exactly like an artist
// application. The embedded Moderation's ApprovedAt doubles as the
// publication timestamp; blogs have no like or comment features.
type Blog struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	PublicID    string `json:"public_id" gorm:"uniqueIndex;size:16"`
	Title       string `json:"title" gorm:"not null"`
	Subtitle    string `json:"subtitle" gorm:"size:160"`
	ArtistName  string `json:"artist_name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Image       string `json:"image" gorm:"not null"`
	Views       int    `json:"views" gorm:"default:0"`
	Moderation  `gorm:"embedded"`
	IdentityID  string         `json:"identity_id" gorm:"index;not null"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
