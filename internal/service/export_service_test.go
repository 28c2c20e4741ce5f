package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type mockExportAssignmentReader struct {
	assignment *models.Assignment
}

func (m *mockExportAssignmentReader) FindByID(ctx context.Context, id int) (*models.Assignment, error) {
	if m.assignment == nil || m.assignment.ID != id {
		return nil, sql.ErrNoRows
	}
	return m.assignment, nil
}

type mockExportSubmissionReader struct {
	submissions []models.Submission
}

func (m *mockExportSubmissionReader) ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error) {
	return m.submissions, nil
}

func newExportFixture() *ExportService {
	grade := 90
	feedback := "well done"
	return NewExportService(
		&mockExportAssignmentReader{assignment: &models.Assignment{ID: 3, CourseID: 1, Title: "Essay"}},
		&mockExportSubmissionReader{submissions: []models.Submission{
			{ID: 1, AssignmentID: 3, StudentID: "student-1", Content: "first", Grade: &grade, Feedback: &feedback, SubmittedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
			{ID: 2, AssignmentID: 3, StudentID: "student-2", Content: "second", SubmittedAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		}},
	)
}

func TestExportServiceSubmissionsCSV(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.Submissions(context.Background(), 3, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, "assignment-3-submissions.csv", file.Filename)

	body := string(file.Content)
	assert.True(t, strings.HasPrefix(body, "ID,Student,Content,Grade,Feedback,Submitted At"))
	assert.Contains(t, body, "student-1")
	assert.Contains(t, body, "90")
	assert.Contains(t, body, "well done")
	assert.Contains(t, body, "2026-03-01 09:30")
}

func TestExportServiceSubmissionsPDF(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.Submissions(context.Background(), 3, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, "assignment-3-submissions.pdf", file.Filename)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportServiceSubmissionsBadFormat(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.Submissions(context.Background(), 3, "xlsx")
	assert.Nil(t, file)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "format", appErr.Field)
}

func TestExportServiceSubmissionsUnknownAssignment(t *testing.T) {
	svc := newExportFixture()

	file, err := svc.Submissions(context.Background(), 99, "csv")
	assert.Nil(t, file)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Assignment not found", appErr.Message)
}
