package services

import (
	"errors"

	"artmarket-api/models"
	"artmarket-api/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	GetMe(identityID string) (*models.UserProfile, error)
	UpsertMe(identityID string, req models.UpsertProfileRequest) (*models.UserProfile, error)
}

type userService struct {
	profileRepo repositories.UserProfileRepository
	artistRepo  repositories.ArtistRepository
}

func NewUserService(profileRepo repositories.UserProfileRepository, artistRepo repositories.ArtistRepository) UserService {
	return &userService{profileRepo: profileRepo, artistRepo: artistRepo}
}

// GetMe returns the caller's profile, or nil when none has been saved yet.
func (s *userService) GetMe(identityID string) (*models.UserProfile, error) {
	if identityID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}

	profile, err := s.profileRepo.GetByIdentityID(identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// UpsertMe saves the caller's profile with links normalized to absolute
// URLs, then copies the mutable fields onto the caller's Artist record if
// one exists, keeping the two in sync.
func (s *userService) UpsertMe(identityID string, req models.UpsertProfileRequest) (*models.UserProfile, error) {
	if identityID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}
	if !models.ValidCountry(req.Country) {
		return nil, models.NewValidationError("Invalid profile data")
	}

	profile, err := s.profileRepo.GetByIdentityID(identityID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.UserProfile{IdentityID: identityID}
	}

	profile.DisplayName = req.DisplayName
	profile.Bio = req.Bio
	profile.Country = req.Country
	profile.City = req.City
	profile.Website = ensureProtocol(req.Website)
	profile.Instagram = ensureProtocol(req.Instagram)
	profile.Facebook = ensureProtocol(req.Facebook)
	profile.AvatarURL = ensureProtocol(req.AvatarURL)

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, err
	}

	artist, err := s.artistRepo.GetByIdentityID(identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return profile, nil
		}
		return nil, err
	}

	artist.Name = profile.DisplayName
	artist.Bio = profile.Bio
	artist.Country = profile.Country
	artist.City = profile.City
	artist.Website = profile.Website
	artist.Instagram = profile.Instagram
	artist.Facebook = profile.Facebook
	if err := s.artistRepo.Save(artist); err != nil {
		return nil, err
	}

	return profile, nil
}
