package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile is the public profile of any authenticated user, keyed by the
// external identity subject. When the owner also has an Artist record the
// mutable profile fields are copied onto it on every profile update.
type UserProfile struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	IdentityID  string         `json:"identity_id" gorm:"uniqueIndex;not null"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	Bio         string         `json:"bio" gorm:"type:text;not null"`
	Country     string         `json:"country" gorm:"not null"`
	City        string         `json:"city" gorm:"not null"`
	Website     string         `json:"website" gorm:"not null"`
	Instagram   string         `json:"instagram" gorm:"not null"`
	Facebook    string         `json:"facebook" gorm:"not null"`
	AvatarURL   string         `json:"avatar_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
