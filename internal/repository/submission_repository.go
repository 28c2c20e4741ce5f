package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openclass/lms-api/internal/models"
)

// SubmissionRepository handles persistence of assignment submissions.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission, stamping submitted_at server-side.
func (r *SubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.SubmittedAt.IsZero() {
		submission.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO submissions (assignment_id, student_id, content, grade, feedback, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &submission.ID, query,
		submission.AssignmentID, submission.StudentID, submission.Content,
		submission.Grade, submission.Feedback, submission.SubmittedAt); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// ListByAssignment returns an assignment's submissions in insertion order.
func (r *SubmissionRepository) ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error) {
	const query = `SELECT id, assignment_id, student_id, content, grade, feedback, submitted_at
FROM submissions WHERE assignment_id = $1 ORDER BY id`
	submissions := []models.Submission{}
	if err := r.db.SelectContext(ctx, &submissions, query, assignmentID); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

// FindByAssignmentAndStudent returns a student's submission for an
// assignment, first match when duplicates exist.
func (r *SubmissionRepository) FindByAssignmentAndStudent(ctx context.Context, assignmentID int, studentID string) (*models.Submission, error) {
	const query = `SELECT id, assignment_id, student_id, content, grade, feedback, submitted_at
FROM submissions WHERE assignment_id = $1 AND student_id = $2 ORDER BY id LIMIT 1`
	var submission models.Submission
	if err := r.db.GetContext(ctx, &submission, query, assignmentID, studentID); err != nil {
		return nil, err
	}
	return &submission, nil
}
