package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/openclass/lms-api/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create persists a new enrollment row. Duplicate (user, course) pairs
// are accepted; dedup is not part of the enroll contract.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.EnrolledAt.IsZero() {
		enrollment.EnrolledAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (user_id, course_id, enrolled_at)
VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.GetContext(ctx, &enrollment.ID, query, enrollment.UserID, enrollment.CourseID, enrollment.EnrolledAt); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListCourseIDsByUser returns the ids of the courses a user is enrolled in.
func (r *EnrollmentRepository) ListCourseIDsByUser(ctx context.Context, userID string) ([]int, error) {
	const query = `SELECT DISTINCT course_id FROM enrollments WHERE user_id = $1 ORDER BY course_id`
	courseIDs := []int{}
	if err := r.db.SelectContext(ctx, &courseIDs, query, userID); err != nil {
		return nil, fmt.Errorf("list user enrollments: %w", err)
	}
	return courseIDs, nil
}
