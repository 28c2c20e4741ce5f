package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type moduleRepository interface {
	ListByCourse(ctx context.Context, courseID int) ([]models.Module, error)
	FindByID(ctx context.Context, id int) (*models.Module, error)
	Create(ctx context.Context, module *models.Module) error
}

// CreateModuleRequest describes the module creation payload. Content is
// rich text passed through verbatim; authors are trusted.
type CreateModuleRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Order   int    `json:"order"`
}

// ModuleService exposes course module content.
type ModuleService struct {
	repo      moduleRepository
	validator *validator.Validate
}

// NewModuleService constructs ModuleService.
func NewModuleService(repo moduleRepository, validate *validator.Validate) *ModuleService {
	if validate == nil {
		validate = validator.New()
	}
	return &ModuleService{repo: repo, validator: validate}
}

// ListByCourse returns modules ordered ascending by their order field.
func (s *ModuleService) ListByCourse(ctx context.Context, courseID int) ([]models.Module, error) {
	modules, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list modules")
	}
	return modules, nil
}

// Get returns a single module or NotFound.
func (s *ModuleService) Get(ctx context.Context, id int) (*models.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Module not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load module")
	}
	return module, nil
}

// Create validates the payload and inserts a module under the course.
// Referential integrity against the course is the store's foreign key.
func (s *ModuleService) Create(ctx context.Context, courseID int, req CreateModuleRequest) (*models.Module, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid module payload")
	}
	module := &models.Module{
		CourseID: courseID,
		Title:    req.Title,
		Content:  req.Content,
		Order:    req.Order,
	}
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create module")
	}
	return module, nil
}
