package repositories

import (
	"time"

	"artmarket-api/models"

	"gorm.io/gorm"
)

type ArtRepository interface {
	Create(art *models.Art) error
	Save(art *models.Art) error
	GetByID(id uint) (*models.Art, error)
	ListVisible(category string) ([]models.Art, error)
	ListAdmin(visible *bool) ([]models.Art, error)
	Delete(id uint) error
	SetVisibility(id uint, visible bool) (int64, error)
	AddLike(artID uint, userID string) (bool, error)
	RemoveLike(artID uint, userID string) (bool, error)
	IsLiked(artID uint, userID string) (bool, error)
	IncrementLikes(artID uint, delta int) error
	IncrementViews(artID uint) (int64, error)
	IncrementComments(artID uint, delta int) error
	SumCountersByArtistName(artistName string) (int, int, error)
	Count() (int64, error)
	CountBanned() (int64, error)
}

type artRepository struct {
	db *gorm.DB
}

func NewArtRepository(db *gorm.DB) ArtRepository {
	return &artRepository{db: db}
}

func (r *artRepository) Create(art *models.Art) error {
	return r.db.Create(art).Error
}

func (r *artRepository) Save(art *models.Art) error {
	return r.db.Save(art).Error
}

func (r *artRepository) GetByID(id uint) (*models.Art, error) {
	var art models.Art
	if err := r.db.First(&art, id).Error; err != nil {
		return nil, err
	}
	return &art, nil
}

func (r *artRepository) ListVisible(category string) ([]models.Art, error) {
	var arts []models.Art
	query := r.db.Where("visible = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Order("created_at DESC").Find(&arts).Error
	return arts, err
}

func (r *artRepository) ListAdmin(visible *bool) ([]models.Art, error) {
	var arts []models.Art
	query := r.db.Model(&models.Art{})
	if visible != nil {
		query = query.Where("visible = ?", *visible)
	}
	err := query.Order("created_at DESC").Find(&arts).Error
	return arts, err
}

func (r *artRepository) Delete(id uint) error {
	return r.db.Delete(&models.Art{}, id).Error
}

func (r *artRepository) SetVisibility(id uint, visible bool) (int64, error) {
	result := r.db.Model(&models.Art{}).Where("id = ?", id).Update("visible", visible)
	return result.RowsAffected, result.Error
}

// AddLike inserts the (art, user) membership row. ON CONFLICT DO NOTHING
// makes the membership check and the insert one atomic storage operation;
// the return value reports whether this call won the insert.
func (r *artRepository) AddLike(artID uint, userID string) (bool, error) {
	result := r.db.Exec(
		`INSERT INTO art_likes (art_id, user_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (art_id, user_id) DO NOTHING`,
		artID, userID, time.Now(),
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveLike deletes the membership row, conditioned on it existing.
func (r *artRepository) RemoveLike(artID uint, userID string) (bool, error) {
	result := r.db.Where("art_id = ? AND user_id = ?", artID, userID).Delete(&models.ArtLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *artRepository) IsLiked(artID uint, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ArtLike{}).
		Where("art_id = ? AND user_id = ?", artID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *artRepository) IncrementLikes(artID uint, delta int) error {
	return r.db.Model(&models.Art{}).Where("id = ?", artID).
		Update("likes", gorm.Expr("likes + ?", delta)).Error
}

func (r *artRepository) IncrementViews(artID uint) (int64, error) {
	result := r.db.Model(&models.Art{}).Where("id = ?", artID).
		Update("views", gorm.Expr("views + 1"))
	return result.RowsAffected, result.Error
}

func (r *artRepository) IncrementComments(artID uint, delta int) error {
	return r.db.Model(&models.Art{}).Where("id = ?", artID).
		Update("comments", gorm.Expr("comments + ?", delta)).Error
}

// SumCountersByArtistName aggregates likes and views over every artwork
// carrying the given artist name. Used for the lazy repair of artist totals.
func (r *artRepository) SumCountersByArtistName(artistName string) (int, int, error) {
	var sums struct {
		Likes int
		Views int
	}
	err := r.db.Model(&models.Art{}).
		Select("COALESCE(SUM(likes), 0) AS likes, COALESCE(SUM(views), 0) AS views").
		Where("artist_name = ?", artistName).
		Scan(&sums).Error
	return sums.Likes, sums.Views, err
}

func (r *artRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Art{}).Count(&count).Error
	return count, err
}

func (r *artRepository) CountBanned() (int64, error) {
	var count int64
	err := r.db.Model(&models.Art{}).Where("visible = ?", false).Count(&count).Error
	return count, err
}
