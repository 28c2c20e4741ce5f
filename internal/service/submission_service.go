package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type submissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error)
	FindByAssignmentAndStudent(ctx context.Context, assignmentID int, studentID string) (*models.Submission, error)
}

// SubmitRequest is the submit payload: a text answer or a URL.
type SubmitRequest struct {
	Content string `json:"content"`
}

// SubmissionService handles assignment submissions.
type SubmissionService struct {
	repo submissionRepository
}

// NewSubmissionService constructs SubmissionService.
func NewSubmissionService(repo submissionRepository) *SubmissionService {
	return &SubmissionService{repo: repo}
}

// Submit validates and records a student's submission. Empty content
// fails validation before any store write. Nothing prevents a student
// from submitting the same assignment twice; the latest rows simply
// accumulate.
func (s *SubmissionService) Submit(ctx context.Context, assignmentID int, studentID string, req SubmitRequest) (*models.Submission, error) {
	if req.Content == "" {
		return nil, appErrors.Invalid("content", "Content required")
	}
	submission := &models.Submission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      req.Content,
	}
	if err := s.repo.Create(ctx, submission); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create submission")
	}
	return submission, nil
}

// ListByAssignment returns every submission for an assignment.
func (s *SubmissionService) ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error) {
	submissions, err := s.repo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list submissions")
	}
	return submissions, nil
}

// GetForStudent returns a student's existing submission, or NotFound.
func (s *SubmissionService) GetForStudent(ctx context.Context, assignmentID int, studentID string) (*models.Submission, error) {
	submission, err := s.repo.FindByAssignmentAndStudent(ctx, assignmentID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "Submission not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load submission")
	}
	return submission, nil
}
