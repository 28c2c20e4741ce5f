package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openclass/lms-api/internal/models"
)

// AssignmentRepository handles persistence of assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListByCourse returns a course's assignments in insertion order.
func (r *AssignmentRepository) ListByCourse(ctx context.Context, courseID int) ([]models.Assignment, error) {
	const query = `SELECT id, course_id, title, description, due_date FROM assignments WHERE course_id = $1 ORDER BY id`
	assignments := []models.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, query, courseID); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// FindByID returns an assignment by its ID.
func (r *AssignmentRepository) FindByID(ctx context.Context, id int) (*models.Assignment, error) {
	const query = `SELECT id, course_id, title, description, due_date FROM assignments WHERE id = $1`
	var assignment models.Assignment
	if err := r.db.GetContext(ctx, &assignment, query, id); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create inserts an assignment and fills in the generated id.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	const query = `INSERT INTO assignments (course_id, title, description, due_date)
VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &assignment.ID, query, assignment.CourseID, assignment.Title, assignment.Description, assignment.DueDate); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}
