package repositories

import (
	"artmarket-api/models"

	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(blog *models.Blog) error
	Save(blog *models.Blog) error
	GetByID(id uint) (*models.Blog, error)
	ListApproved() ([]models.Blog, error)
	ListByStatus(status string) ([]models.Blog, error)
	CountByStatus(status models.ModerationStatus) (int64, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

func (r *blogRepository) Save(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

func (r *blogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, id).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *blogRepository) ListApproved() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("status = ?", models.StatusApproved).
		Order("approved_at DESC").Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) ListByStatus(status string) ([]models.Blog, error) {
	var blogs []models.Blog
	query := r.db.Model(&models.Blog{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("submitted_at DESC").Order("approved_at DESC").Find(&blogs).Error
	return blogs, err
}

func (r *blogRepository) CountByStatus(status models.ModerationStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Blog{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
