package repositories

import (
	"artmarket-api/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	GetByIdentityID(identityID string) (*models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) GetByIdentityID(identityID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("identity_id = ?", identityID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Save(profile *models.UserProfile) error {
	return r.db.Save(profile).Error
}
