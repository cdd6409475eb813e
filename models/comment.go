package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AuthorRoleUser  = "User"
	AuthorRoleAdmin = "Admin"
)

func ValidAuthorRole(r string) bool {
	return r == AuthorRoleUser || r == AuthorRoleAdmin
}

// Comment belongs to exactly one artwork. Author fields are a snapshot of
// the external identity at posting time; deleting a comment decrements the
// artwork's Comments counter.
type Comment struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	PublicID          string         `json:"public_id" gorm:"uniqueIndex;size:16"`
	ArtID             uint           `json:"art_id" gorm:"not null;index:idx_comment_art_created,priority:1"`
	Body              string         `json:"body" gorm:"type:text;not null"`
	AuthorID          string         `json:"author_id" gorm:"not null;index"`
	AuthorUsername    string         `json:"author_username" gorm:"not null"`
	AuthorDisplayName string         `json:"author_display_name" gorm:"not null"`
	AuthorImage       string         `json:"author_image" gorm:"not null"`
	AuthorRole        string         `json:"author_role" gorm:"not null"`
	CreatedAt         time.Time      `json:"created_at" gorm:"index:idx_comment_art_created,priority:2"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}
