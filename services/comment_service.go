package services

import (
	"context"
	"errors"

	"artmarket-api/identity"
	"artmarket-api/models"
	"artmarket-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	ListForArt(artID uint) ([]models.Comment, error)
	Create(artID uint, req models.CreateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, commentID uint, callerIdentityID string) error
}

type commentService struct {
	commentRepo  repositories.CommentRepository
	artRepo      repositories.ArtRepository
	sequenceRepo repositories.SequenceRepository
	provider     identity.Provider
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	artRepo repositories.ArtRepository,
	sequenceRepo repositories.SequenceRepository,
	provider identity.Provider,
) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		artRepo:      artRepo,
		sequenceRepo: sequenceRepo,
		provider:     provider,
	}
}

func (s *commentService) ListForArt(artID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByArt(artID)
}

// Create attaches a comment to an existing artwork and bumps its comment
// counter.
func (s *commentService) Create(artID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if !models.ValidAuthorRole(req.AuthorRole) {
		return nil, models.NewValidationError("Invalid comment data")
	}

	if _, err := s.artRepo.GetByID(artID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Art not found")
		}
		return nil, err
	}

	seq, err := s.sequenceRepo.Next(models.SequenceComments)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PublicID:          models.FormatSequence(seq),
		ArtID:             artID,
		Body:              req.Body,
		AuthorID:          req.AuthorID,
		AuthorUsername:    req.AuthorUsername,
		AuthorDisplayName: req.AuthorDisplayName,
		AuthorImage:       req.AuthorImage,
		AuthorRole:        req.AuthorRole,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if err := s.artRepo.IncrementComments(artID, 1); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete is permitted for the comment's author or an admin. The admin
// check asks the identity provider; a lookup failure means "not admin",
// never an error. The counter decrement targets the comment's own artwork,
// not whatever ID the route carried.
func (s *commentService) Delete(ctx context.Context, commentID uint, callerIdentityID string) error {
	if callerIdentityID == "" {
		return models.NewUnauthorizedError("Unauthorized")
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment not found")
		}
		return err
	}

	isOwner := comment.AuthorID == callerIdentityID
	isAdmin := false
	if !isOwner {
		role, err := s.provider.GetRole(ctx, callerIdentityID)
		if err == nil && role == identity.RoleAdmin {
			isAdmin = true
		}
	}
	if !isOwner && !isAdmin {
		return models.NewForbiddenError("Forbidden")
	}

	if err := s.commentRepo.Delete(commentID); err != nil {
		return err
	}

	return s.artRepo.IncrementComments(comment.ArtID, -1)
}
