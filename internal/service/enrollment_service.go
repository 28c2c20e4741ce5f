package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListCourseIDsByUser(ctx context.Context, userID string) ([]int, error)
}

// EnrollmentService records which users take which courses.
type EnrollmentService struct {
	repo   enrollmentRepository
	logger *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, logger: logger}
}

// Enroll inserts an enrollment row for the user. Calling it twice for the
// same pair inserts two rows; enroll is not idempotent.
func (s *EnrollmentService) Enroll(ctx context.Context, userID string, courseID int) error {
	enrollment := &models.Enrollment{UserID: userID, CourseID: courseID}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enroll user")
	}
	s.logger.Info("user enrolled", zap.String("user_id", userID), zap.Int("course_id", courseID))
	return nil
}

// CourseIDs returns the set of course ids the user is enrolled in.
func (s *EnrollmentService) CourseIDs(ctx context.Context, userID string) ([]int, error) {
	courseIDs, err := s.repo.ListCourseIDsByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrollments")
	}
	return courseIDs, nil
}
