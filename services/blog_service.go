package services

import (
	"errors"
	"time"

	"artmarket-api/models"
	"artmarket-api/repositories"

	"gorm.io/gorm"
)

type BlogService interface {
	ListApproved() ([]models.Blog, error)
	Get(id uint) (*models.Blog, error)
	Create(identityID string, req models.CreateBlogRequest) (*models.Blog, error)
	ListForAdmin(status string) ([]models.Blog, error)
	Approve(id uint) (*models.Blog, error)
	Reject(id uint, reason string) (*models.Blog, error)
}

type blogService struct {
	blogRepo     repositories.BlogRepository
	sequenceRepo repositories.SequenceRepository
}

func NewBlogService(blogRepo repositories.BlogRepository, sequenceRepo repositories.SequenceRepository) BlogService {
	return &blogService{blogRepo: blogRepo, sequenceRepo: sequenceRepo}
}

func (s *blogService) ListApproved() ([]models.Blog, error) {
	return s.blogRepo.ListApproved()
}

func (s *blogService) Get(id uint) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Blog not found")
		}
		return nil, err
	}
	return blog, nil
}

// Create submits a new post into the moderation queue.
func (s *blogService) Create(identityID string, req models.CreateBlogRequest) (*models.Blog, error) {
	if identityID == "" {
		return nil, models.NewUnauthorizedError("User not authenticated")
	}

	seq, err := s.sequenceRepo.Next(models.SequenceBlogs)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		PublicID:    models.FormatSequence(seq),
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		ArtistName:  req.ArtistName,
		Description: req.Description,
		Image:       req.Image,
		IdentityID:  identityID,
		Featured:    req.Featured,
	}
	blog.Submit(time.Now())

	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) ListForAdmin(status string) ([]models.Blog, error) {
	if !models.ValidModerationStatus(status) {
		status = ""
	}
	return s.blogRepo.ListByStatus(status)
}

// Approve publishes the post; the approval timestamp is its publication
// time.
func (s *blogService) Approve(id uint) (*models.Blog, error) {
	blog, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	blog.Moderation.Approve(time.Now())
	if err := s.blogRepo.Save(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Reject(id uint, reason string) (*models.Blog, error) {
	blog, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	blog.Moderation.Reject(reason, time.Now())
	if err := s.blogRepo.Save(blog); err != nil {
		return nil, err
	}
	return blog, nil
}
