package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
)

func newModuleMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestModuleRepositoryListByCourse(t *testing.T) {
	db, mock, cleanup := newModuleMock(t)
	defer cleanup()
	repo := NewModuleRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "title", "content", "order"}).
		AddRow(3, 1, "Intro", "Welcome", 0).
		AddRow(1, 1, "Week 1", "Reading list", 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, course_id, title, content, "order" FROM modules WHERE course_id = $1 ORDER BY "order" ASC`)).
		WithArgs(1).
		WillReturnRows(rows)

	modules, err := repo.ListByCourse(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.Equal(t, "Intro", modules[0].Title)
	assert.Equal(t, 0, modules[0].Order)
	assert.Equal(t, 1, modules[1].Order)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleRepositoryFindByIDNoRows(t *testing.T) {
	db, mock, cleanup := newModuleMock(t)
	defer cleanup()
	repo := NewModuleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, course_id, title, content, "order" FROM modules WHERE id = $1`)).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	module, err := repo.FindByID(context.Background(), 42)
	assert.Nil(t, module)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestModuleRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newModuleMock(t)
	defer cleanup()
	repo := NewModuleRepository(db)

	mock.ExpectQuery("INSERT INTO modules").
		WithArgs(1, "Week 2", "Lab notes", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	module := &models.Module{CourseID: 1, Title: "Week 2", Content: "Lab notes", Order: 2}
	err := repo.Create(context.Background(), module)
	require.NoError(t, err)
	assert.Equal(t, 11, module.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
