package services

import (
	"context"
	"errors"
	"time"

	"artmarket-api/identity"
	"artmarket-api/models"
	"artmarket-api/repositories"

	"gorm.io/gorm"
)

type ArtistService interface {
	ListApproved() ([]models.Artist, error)
	ListForAdmin(status string) ([]models.Artist, error)
	Apply(identityID string, req models.ApplyArtistRequest) (*models.Artist, error)
	GetByID(id uint) (*models.Artist, error)
	Approve(ctx context.Context, id uint) (*models.Artist, error)
	Reject(id uint, reason string) (*models.Artist, error)
}

type artistService struct {
	artistRepo   repositories.ArtistRepository
	artRepo      repositories.ArtRepository
	sequenceRepo repositories.SequenceRepository
	provider     identity.Provider
}

func NewArtistService(
	artistRepo repositories.ArtistRepository,
	artRepo repositories.ArtRepository,
	sequenceRepo repositories.SequenceRepository,
	provider identity.Provider,
) ArtistService {
	return &artistService{
		artistRepo:   artistRepo,
		artRepo:      artRepo,
		sequenceRepo: sequenceRepo,
		provider:     provider,
	}
}

func (s *artistService) ListApproved() ([]models.Artist, error) {
	return s.artistRepo.ListApproved()
}

// ListForAdmin filters by status when a valid one is given; anything else
// means "all".
func (s *artistService) ListForAdmin(status string) ([]models.Artist, error) {
	if !models.ValidModerationStatus(status) {
		status = ""
	}
	return s.artistRepo.ListByStatus(status)
}

// Apply creates or refreshes the caller's artist application and puts it
// back into the pending queue. One application per identity.
func (s *artistService) Apply(identityID string, req models.ApplyArtistRequest) (*models.Artist, error) {
	if identityID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}
	if !models.ValidCountry(req.Country) {
		return nil, models.NewValidationError("Invalid artist data")
	}

	now := time.Now()

	existing, err := s.artistRepo.GetByIdentityID(identityID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		s.applyProfileFields(existing, req)
		existing.Submit(now)
		if err := s.artistRepo.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	seq, err := s.sequenceRepo.Next(models.SequenceArtists)
	if err != nil {
		return nil, err
	}

	artist := &models.Artist{
		PublicID:   models.FormatSequence(seq),
		IdentityID: identityID,
		Featured:   req.Featured,
	}
	s.applyProfileFields(artist, req)
	artist.Submit(now)

	if err := s.artistRepo.Create(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *artistService) applyProfileFields(artist *models.Artist, req models.ApplyArtistRequest) {
	artist.Name = req.Name
	artist.Bio = req.Bio
	artist.Country = req.Country
	artist.City = req.City
	artist.Website = ensureProtocol(req.Website)
	artist.Instagram = ensureProtocol(req.Instagram)
	artist.Facebook = ensureProtocol(req.Facebook)
}

// GetByID returns the artist with their aggregate totals recomputed from
// the artwork catalog. When the stored totals have drifted from the true
// sums the correction is persisted before returning, so incremental
// propagation never has to be exact.
func (s *artistService) GetByID(id uint) (*models.Artist, error) {
	artist, err := s.artistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Artist not found")
		}
		return nil, err
	}

	likes, views, err := s.artRepo.SumCountersByArtistName(artist.Name)
	if err != nil {
		return nil, err
	}

	if artist.TotalLikes != likes || artist.TotalViews != views {
		if err := s.artistRepo.UpdateTotals(artist.ID, likes, views); err != nil {
			return nil, err
		}
		artist.TotalLikes = likes
		artist.TotalViews = views
	}

	return artist, nil
}

// Approve escalates the owner's role at the identity provider before
// persisting the local transition. A role-sync failure aborts the approval
// so status and role never diverge.
func (s *artistService) Approve(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.artistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Artist not found")
		}
		return nil, err
	}

	if err := s.provider.SetRole(ctx, artist.IdentityID, identity.RoleArtist); err != nil {
		return nil, models.NewRoleSyncError("Failed to update artist role at identity provider")
	}

	artist.Approve(time.Now())
	if err := s.artistRepo.Save(artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *artistService) Reject(id uint, reason string) (*models.Artist, error) {
	artist, err := s.artistRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Artist not found")
		}
		return nil, err
	}

	artist.Reject(reason, time.Now())
	if err := s.artistRepo.Save(artist); err != nil {
		return nil, err
	}
	return artist, nil
}
