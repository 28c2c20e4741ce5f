package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
)

func newSubmissionMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSubmissionRepositoryCreateStampsSubmittedAt(t *testing.T) {
	db, mock, cleanup := newSubmissionMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectQuery("INSERT INTO submissions").
		WithArgs(3, "student-1", "my answer", nil, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	submission := &models.Submission{AssignmentID: 3, StudentID: "student-1", Content: "my answer"}
	err := repo.Create(context.Background(), submission)
	require.NoError(t, err)
	assert.Equal(t, 21, submission.ID)
	assert.False(t, submission.SubmittedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryListByAssignment(t *testing.T) {
	db, mock, cleanup := newSubmissionMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	grade := 85
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "assignment_id", "student_id", "content", "grade", "feedback", "submitted_at"}).
		AddRow(1, 3, "student-1", "first", grade, "good", now).
		AddRow(2, 3, "student-2", "second", nil, nil, now)
	mock.ExpectQuery("SELECT id, assignment_id, student_id, content, grade, feedback, submitted_at").
		WithArgs(3).
		WillReturnRows(rows)

	submissions, err := repo.ListByAssignment(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	require.NotNil(t, submissions[0].Grade)
	assert.Equal(t, grade, *submissions[0].Grade)
	assert.Nil(t, submissions[1].Grade)
	assert.Nil(t, submissions[1].Feedback)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionRepositoryFindByAssignmentAndStudentNoRows(t *testing.T) {
	db, mock, cleanup := newSubmissionMock(t)
	defer cleanup()
	repo := NewSubmissionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE assignment_id = $1 AND student_id = $2 ORDER BY id LIMIT 1")).
		WithArgs(3, "student-9").
		WillReturnError(sql.ErrNoRows)

	submission, err := repo.FindByAssignmentAndStudent(context.Background(), 3, "student-9")
	assert.Nil(t, submission)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
