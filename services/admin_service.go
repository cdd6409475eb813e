package services

import (
	"artmarket-api/models"
	"artmarket-api/repositories"
)

type AdminService interface {
	Overview() (*models.OverviewResponse, error)
}

type adminService struct {
	artistRepo repositories.ArtistRepository
	blogRepo   repositories.BlogRepository
	artRepo    repositories.ArtRepository
}

func NewAdminService(
	artistRepo repositories.ArtistRepository,
	blogRepo repositories.BlogRepository,
	artRepo repositories.ArtRepository,
) AdminService {
	return &adminService{
		artistRepo: artistRepo,
		blogRepo:   blogRepo,
		artRepo:    artRepo,
	}
}

// Overview aggregates the moderation queue and catalog counts shown on the
// admin dashboard.
func (s *adminService) Overview() (*models.OverviewResponse, error) {
	pendingArtists, err := s.artistRepo.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}
	pendingBlogs, err := s.blogRepo.CountByStatus(models.StatusPending)
	if err != nil {
		return nil, err
	}
	bannedArtworks, err := s.artRepo.CountBanned()
	if err != nil {
		return nil, err
	}
	totalArtists, err := s.artistRepo.CountByStatus(models.StatusApproved)
	if err != nil {
		return nil, err
	}
	totalArtworks, err := s.artRepo.Count()
	if err != nil {
		return nil, err
	}

	return &models.OverviewResponse{
		PendingArtists: pendingArtists,
		PendingBlogs:   pendingBlogs,
		BannedArtworks: bannedArtworks,
		TotalArtists:   totalArtists,
		TotalArtworks:  totalArtworks,
	}, nil
}
