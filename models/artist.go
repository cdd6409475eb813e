package models

import (
	"time"

	"gorm.io/gorm"
)

var Countries = []string{
	"Australia",
	"Canada",
	"China",
	"France",
	"Germany",
	"India",
	"Italy",
	"Japan",
	"New Zealand",
	"Qatar",
	"Russia",
	"Saudi Arabia",
	"South Korea",
	"Spain",
	"Sri Lanka",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
}

func ValidCountry(c string) bool {
	for _, v := range Countries {
		if v == c {
			return true
		}
	}
	return false
}

// Artist is an approved-or-pending artist application plus the public
// profile it becomes. TotalLikes and TotalViews are denormalized sums over
// this artist's artworks, matched by ArtistName; they are adjusted
// incrementally on artwork writes and recomputed in full on read.
type Artist struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	PublicID   string `json:"public_id" gorm:"uniqueIndex;size:16"`
	IdentityID string `json:"identity_id" gorm:"uniqueIndex;not null"`
	Name       string `json:"name" gorm:"not null"`
	Bio        string `json:"bio" gorm:"type:text;not null"`
	Country    string `json:"country" gorm:"not null"`
	City       string `json:"city" gorm:"not null"`
	Website    string `json:"website" gorm:"not null"`
	Instagram  string `json:"instagram" gorm:"not null"`
	Facebook   string `json:"facebook" gorm:"not null"`
	Moderation `gorm:"embedded"`
	TotalLikes int            `json:"total_likes" gorm:"default:0"`
	TotalViews int            `json:"total_views" gorm:"default:0"`
	Featured   bool           `json:"featured" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
