package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type announcementRepository interface {
	ListWithAuthors(ctx context.Context) ([]models.AnnouncementWithAuthor, error)
	Create(ctx context.Context, announcement *models.Announcement) error
}

// CreateAnnouncementRequest describes the announcement creation payload.
// The author is the acting principal, never part of the body.
type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// AnnouncementService exposes portal-wide notices.
type AnnouncementService struct {
	repo      announcementRepository
	validator *validator.Validate
}

// NewAnnouncementService constructs AnnouncementService.
func NewAnnouncementService(repo announcementRepository, validate *validator.Validate) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	return &AnnouncementService{repo: repo, validator: validate}
}

// List returns announcements with their authors, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]models.AnnouncementWithAuthor, error) {
	announcements, err := s.repo.ListWithAuthors(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	return announcements, nil
}

// Create validates the payload and inserts an announcement by the author.
func (s *AnnouncementService) Create(ctx context.Context, authorID string, req CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	announcement := &models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, announcement); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}
	return announcement, nil
}
