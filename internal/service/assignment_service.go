package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type assignmentRepository interface {
	ListByCourse(ctx context.Context, courseID int) ([]models.Assignment, error)
	FindByID(ctx context.Context, id int) (*models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
}

// CreateAssignmentRequest describes the assignment creation payload. The
// due date is an absolute instant; no validation against "now" happens.
type CreateAssignmentRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
}

// AssignmentService exposes course assignments.
type AssignmentService struct {
	repo      assignmentRepository
	validator *validator.Validate
}

// NewAssignmentService constructs AssignmentService.
func NewAssignmentService(repo assignmentRepository, validate *validator.Validate) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{repo: repo, validator: validate}
}

// ListByCourse returns a course's assignments in insertion order.
func (s *AssignmentService) ListByCourse(ctx context.Context, courseID int) ([]models.Assignment, error) {
	assignments, err := s.repo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// Get returns a single assignment or NotFound.
func (s *AssignmentService) Get(ctx context.Context, id int) (*models.Assignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Assignment not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load assignment")
	}
	return assignment, nil
}

// Create validates the payload and inserts an assignment under the course.
func (s *AssignmentService) Create(ctx context.Context, courseID int, req CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	assignment := &models.Assignment{
		CourseID:    courseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}
	return assignment, nil
}
