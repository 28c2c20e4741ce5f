package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
)

type mockEnrollmentRepo struct {
	rows []models.Enrollment
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	enrollment.ID = len(m.rows) + 1
	m.rows = append(m.rows, *enrollment)
	return nil
}

func (m *mockEnrollmentRepo) ListCourseIDsByUser(ctx context.Context, userID string) ([]int, error) {
	seen := map[int]bool{}
	ids := []int{}
	for _, e := range m.rows {
		if e.UserID == userID && !seen[e.CourseID] {
			seen[e.CourseID] = true
			ids = append(ids, e.CourseID)
		}
	}
	return ids, nil
}

func TestEnrollmentServiceEnroll(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc := NewEnrollmentService(repo, nil)

	err := svc.Enroll(context.Background(), "user-1", 4)
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "user-1", repo.rows[0].UserID)
	assert.Equal(t, 4, repo.rows[0].CourseID)
}

func TestEnrollmentServiceEnrollRepeatInsertsAgain(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc := NewEnrollmentService(repo, nil)

	require.NoError(t, svc.Enroll(context.Background(), "user-1", 4))
	require.NoError(t, svc.Enroll(context.Background(), "user-1", 4))
	assert.Len(t, repo.rows, 2)
}

func TestEnrollmentServiceCourseIDs(t *testing.T) {
	repo := &mockEnrollmentRepo{}
	svc := NewEnrollmentService(repo, nil)

	require.NoError(t, svc.Enroll(context.Background(), "user-1", 4))
	require.NoError(t, svc.Enroll(context.Background(), "user-1", 4))
	require.NoError(t, svc.Enroll(context.Background(), "user-1", 2))
	require.NoError(t, svc.Enroll(context.Background(), "user-2", 9))

	ids, err := svc.CourseIDs(context.Background(), "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 4}, ids)
}
