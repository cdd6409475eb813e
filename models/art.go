package models

import (
	"time"

	"gorm.io/gorm"
)

var ArtCategories = []string{
	"Painting",
	"Sculpture",
	"Photography",
	"Mixed Media",
	"Digital Art",
	"Other",
}

var ArtAvailabilities = []string{
	"For Sale",
	"Not for Sale",
	"Sold",
}

func ValidArtCategory(c string) bool {
	for _, v := range ArtCategories {
		if v == c {
			return true
		}
	}
	return false
}

func ValidArtAvailability(a string) bool {
	for _, v := range ArtAvailabilities {
		if v == a {
			return true
		}
	}
	return false
}

// Art is a published artwork. ArtistName is a denormalized copy of the
// owning artist's name, not a foreign key. Likes must equal the number of
// ArtLike rows for this artwork; Visible is the admin ban flag.
type Art struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	PublicID     string         `json:"public_id" gorm:"uniqueIndex;size:16"`
	Title        string         `json:"title" gorm:"not null"`
	ArtistName   string         `json:"artist_name" gorm:"index;not null"`
	Description  string         `json:"description" gorm:"type:text;not null"`
	Category     string         `json:"category" gorm:"not null"`
	Price        float64        `json:"price" gorm:"not null"`
	Images       []string       `json:"images" gorm:"serializer:json"`
	Availability string         `json:"availability" gorm:"not null"`
	Likes        int            `json:"likes" gorm:"default:0"`
	Views        int            `json:"views" gorm:"default:0"`
	Comments     int            `json:"comments" gorm:"default:0"`
	Visible      bool           `json:"visible" gorm:"default:true"`
	Featured     bool           `json:"featured" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// ArtLike records one user's like on one artwork. The (art_id, user_id)
// pair is unique; membership here is what the Likes counter denormalizes.
type ArtLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArtID     uint      `json:"art_id" gorm:"not null;uniqueIndex:idx_art_like_user"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_art_like_user"`
	CreatedAt time.Time `json:"created_at"`
}
