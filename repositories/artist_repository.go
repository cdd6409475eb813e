package repositories

import (
	"artmarket-api/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(artist *models.Artist) error
	Save(artist *models.Artist) error
	GetByID(id uint) (*models.Artist, error)
	GetByIdentityID(identityID string) (*models.Artist, error)
	ListApproved() ([]models.Artist, error)
	ListByStatus(status string) ([]models.Artist, error)
	UpdateTotals(id uint, totalLikes, totalViews int) error
	SetTotalsByName(artistName string, totalLikes, totalViews int) error
	AdjustCounters(artistName string, likesDelta, viewsDelta int) error
	CountByStatus(status models.ModerationStatus) (int64, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(artist *models.Artist) error {
	return r.db.Create(artist).Error
}

func (r *artistRepository) Save(artist *models.Artist) error {
	return r.db.Save(artist).Error
}

func (r *artistRepository) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) GetByIdentityID(identityID string) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.Where("identity_id = ?", identityID).First(&artist).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) ListApproved() ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.Where("status = ?", models.StatusApproved).Find(&artists).Error
	return artists, err
}

// ListByStatus returns all artists, optionally filtered, most recent
// submissions first.
func (r *artistRepository) ListByStatus(status string) ([]models.Artist, error) {
	var artists []models.Artist
	query := r.db.Model(&models.Artist{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("submitted_at DESC").Order("approved_at DESC").Find(&artists).Error
	return artists, err
}

func (r *artistRepository) UpdateTotals(id uint, totalLikes, totalViews int) error {
	return r.db.Model(&models.Artist{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_likes": totalLikes,
		"total_views": totalViews,
	}).Error
}

// SetTotalsByName overwrites the stored totals for every artist matching
// artistName. Used after an artwork delete, where a full recompute replaces
// the incremental path to avoid double-subtraction.
func (r *artistRepository) SetTotalsByName(artistName string, totalLikes, totalViews int) error {
	if artistName == "" {
		return nil
	}
	return r.db.Model(&models.Artist{}).Where("name = ?", artistName).Updates(map[string]interface{}{
		"total_likes": totalLikes,
		"total_views": totalViews,
	}).Error
}

// AdjustCounters applies atomic deltas to the denormalized totals of every
// artist matching artistName. Drift introduced here is corrected by the
// full recompute on artist read, so no clamping is done.
func (r *artistRepository) AdjustCounters(artistName string, likesDelta, viewsDelta int) error {
	if artistName == "" || (likesDelta == 0 && viewsDelta == 0) {
		return nil
	}

	updates := map[string]interface{}{}
	if likesDelta != 0 {
		updates["total_likes"] = gorm.Expr("total_likes + ?", likesDelta)
	}
	if viewsDelta != 0 {
		updates["total_views"] = gorm.Expr("total_views + ?", viewsDelta)
	}

	return r.db.Model(&models.Artist{}).Where("name = ?", artistName).Updates(updates).Error
}

func (r *artistRepository) CountByStatus(status models.ModerationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Artist{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
