package services

import (
	"artmarket-api/models"
	"artmarket-api/repositories"
)

type HomepageService interface {
	Get() (*models.HomeConfig, error)
	Set(req models.UpdateHomepageRequest) (*models.HomeConfig, error)
}

type homepageService struct {
	homeConfigRepo repositories.HomeConfigRepository
}

func NewHomepageService(homeConfigRepo repositories.HomeConfigRepository) HomepageService {
	return &homepageService{homeConfigRepo: homeConfigRepo}
}

func (s *homepageService) Get() (*models.HomeConfig, error) {
	return s.homeConfigRepo.Get()
}

// Set replaces the curated lists. Each list is independently de-duplicated
// (first occurrence wins) and truncated to its cap. The IDs are advisory;
// nothing checks that they resolve to live records.
func (s *homepageService) Set(req models.UpdateHomepageRequest) (*models.HomeConfig, error) {
	config, err := s.homeConfigRepo.Get()
	if err != nil {
		return nil, err
	}

	config.FeaturedArtistIDs = models.ClampUnique(req.FeaturedArtistIDs, models.MaxFeaturedArtists)
	config.FeaturedArtIDs = models.ClampUnique(req.FeaturedArtIDs, models.MaxFeaturedArts)
	config.FeaturedBlogIDs = models.ClampUnique(req.FeaturedBlogIDs, models.MaxFeaturedBlogs)

	if err := s.homeConfigRepo.Save(config); err != nil {
		return nil, err
	}
	return config, nil
}
