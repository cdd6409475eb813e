package services

import (
	"errors"

	"artmarket-api/models"
	"artmarket-api/repositories"

	"gorm.io/gorm"
)

type ArtService interface {
	List(category string) ([]models.Art, error)
	Get(id uint) (*models.Art, error)
	Create(identityID string, req models.CreateArtRequest) (*models.Art, error)
	Update(id uint, req models.UpdateArtRequest) (*models.Art, error)
	Delete(id uint) error
	ToggleLike(artID uint, userID string) (*models.ToggleLikeResponse, error)
	IncrementView(artID uint) error
	ListForAdmin(visible *bool) ([]models.Art, error)
	SetBanned(id uint, banned bool) (*models.Art, error)
}

type artService struct {
	artRepo      repositories.ArtRepository
	artistRepo   repositories.ArtistRepository
	sequenceRepo repositories.SequenceRepository
}

func NewArtService(
	artRepo repositories.ArtRepository,
	artistRepo repositories.ArtistRepository,
	sequenceRepo repositories.SequenceRepository,
) ArtService {
	return &artService{
		artRepo:      artRepo,
		artistRepo:   artistRepo,
		sequenceRepo: sequenceRepo,
	}
}

// List returns visible artworks. An unknown category filter is silently
// ignored rather than rejected.
func (s *artService) List(category string) ([]models.Art, error) {
	if !models.ValidArtCategory(category) {
		category = ""
	}
	return s.artRepo.ListVisible(category)
}

func (s *artService) Get(id uint) (*models.Art, error) {
	art, err := s.artRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Art not found")
		}
		return nil, err
	}
	return art, nil
}

// Create requires the caller to hold an approved artist application. The
// artist name on the artwork is always taken from that record, never from
// the request.
func (s *artService) Create(identityID string, req models.CreateArtRequest) (*models.Art, error) {
	if identityID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}

	artist, err := s.artistRepo.GetByIdentityID(identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewValidationError("Not an approved artist")
		}
		return nil, err
	}
	if artist.Status != models.StatusApproved {
		return nil, models.NewValidationError("Not an approved artist")
	}

	if !models.ValidArtCategory(req.Category) {
		return nil, models.NewValidationError("Invalid art data")
	}
	if !models.ValidArtAvailability(req.Availability) {
		return nil, models.NewValidationError("Invalid art data")
	}

	seq, err := s.sequenceRepo.Next(models.SequenceArts)
	if err != nil {
		return nil, err
	}

	art := &models.Art{
		PublicID:     models.FormatSequence(seq),
		Title:        req.Title,
		ArtistName:   artist.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		Images:       req.Images,
		Availability: req.Availability,
		Visible:      true,
		Featured:     req.Featured,
	}

	if err := s.artRepo.Create(art); err != nil {
		return nil, err
	}
	return art, nil
}

func (s *artService) Update(id uint, req models.UpdateArtRequest) (*models.Art, error) {
	art, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidArtAvailability(req.Availability) {
		return nil, models.NewValidationError("Invalid art data")
	}

	art.Title = req.Title
	art.Description = req.Description
	art.Price = req.Price
	art.Images = req.Images
	art.Availability = req.Availability
	art.Featured = req.Featured

	if err := s.artRepo.Save(art); err != nil {
		return nil, err
	}
	return art, nil
}

// Delete removes the artwork and then recomputes (rather than decrements)
// the owning artist's totals from the remaining artworks, which cannot
// double-subtract no matter how the delete raced other writes.
func (s *artService) Delete(id uint) error {
	art, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.artRepo.Delete(id); err != nil {
		return err
	}

	likes, views, err := s.artRepo.SumCountersByArtistName(art.ArtistName)
	if err != nil {
		return err
	}
	return s.artistRepo.SetTotalsByName(art.ArtistName, likes, views)
}

// ToggleLike flips the caller's like membership in two phases: an atomic
// conditional insert, and if that matched nothing (already liked), the
// inverse conditional delete. The storage layer checks membership and
// mutates in one operation, so concurrent toggles from the same user
// cannot double-count. The read-back reports the resulting state.
func (s *artService) ToggleLike(artID uint, userID string) (*models.ToggleLikeResponse, error) {
	if userID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}

	art, err := s.Get(artID)
	if err != nil {
		return nil, err
	}

	delta := 0
	added, err := s.artRepo.AddLike(artID, userID)
	if err != nil {
		return nil, err
	}
	if added {
		delta = 1
	} else {
		removed, err := s.artRepo.RemoveLike(artID, userID)
		if err != nil {
			return nil, err
		}
		if removed {
			delta = -1
		}
	}

	if delta != 0 {
		if err := s.artRepo.IncrementLikes(artID, delta); err != nil {
			return nil, err
		}
		if err := s.artistRepo.AdjustCounters(art.ArtistName, delta, 0); err != nil {
			return nil, err
		}
	}

	updated, err := s.artRepo.GetByID(artID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Art not found")
		}
		return nil, err
	}
	liked, err := s.artRepo.IsLiked(artID, userID)
	if err != nil {
		return nil, err
	}

	return &models.ToggleLikeResponse{Likes: updated.Likes, Liked: liked}, nil
}

// IncrementView counts every call; repeat views from the same client are
// deliberate, not de-duplicated.
func (s *artService) IncrementView(artID uint) error {
	art, err := s.Get(artID)
	if err != nil {
		return err
	}

	rows, err := s.artRepo.IncrementViews(artID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.NewNotFoundError("Art not found")
	}

	return s.artistRepo.AdjustCounters(art.ArtistName, 0, 1)
}

func (s *artService) ListForAdmin(visible *bool) ([]models.Art, error) {
	return s.artRepo.ListAdmin(visible)
}

func (s *artService) SetBanned(id uint, banned bool) (*models.Art, error) {
	rows, err := s.artRepo.SetVisibility(id, !banned)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.NewNotFoundError("Art not found")
	}
	return s.artRepo.GetByID(id)
}
