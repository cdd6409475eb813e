package repositories

import (
	"errors"

	"artmarket-api/models"

	"gorm.io/gorm"
)

type HomeConfigRepository interface {
	Get() (*models.HomeConfig, error)
	Save(config *models.HomeConfig) error
}

type homeConfigRepository struct {
	db *gorm.DB
}

func NewHomeConfigRepository(db *gorm.DB) HomeConfigRepository {
	return &homeConfigRepository{db: db}
}

// Get returns the singleton curation record, creating it with empty lists
// on first read.
func (r *homeConfigRepository) Get() (*models.HomeConfig, error) {
	var config models.HomeConfig
	err := r.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config = models.HomeConfig{
			FeaturedArtistIDs: []string{},
			FeaturedArtIDs:    []string{},
			FeaturedBlogIDs:   []string{},
		}
		if err := r.db.Create(&config).Error; err != nil {
			return nil, err
		}
		return &config, nil
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func (r *homeConfigRepository) Save(config *models.HomeConfig) error {
	return r.db.Save(config).Error
}
