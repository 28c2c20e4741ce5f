package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
)

type mockModuleRepo struct {
	modules map[int]models.Module
	created *models.Module
}

func (m *mockModuleRepo) ListByCourse(ctx context.Context, courseID int) ([]models.Module, error) {
	list := []models.Module{}
	for _, mod := range m.modules {
		if mod.CourseID == courseID {
			list = append(list, mod)
		}
	}
	return list, nil
}

func (m *mockModuleRepo) FindByID(ctx context.Context, id int) (*models.Module, error) {
	if mod, ok := m.modules[id]; ok {
		return &mod, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockModuleRepo) Create(ctx context.Context, module *models.Module) error {
	if m.modules == nil {
		m.modules = make(map[int]models.Module)
	}
	module.ID = len(m.modules) + 1
	m.modules[module.ID] = *module
	m.created = module
	return nil
}

func TestModuleServiceGetNotFound(t *testing.T) {
	svc := NewModuleService(&mockModuleRepo{}, nil)

	module, err := svc.Get(context.Background(), 42)
	assert.Nil(t, module)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Module not found", appErr.Message)
}

func TestModuleServiceListByCourseUnknownCourse(t *testing.T) {
	svc := NewModuleService(&mockModuleRepo{}, nil)

	modules, err := svc.ListByCourse(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, modules)
}

func TestModuleServiceCreateValidation(t *testing.T) {
	repo := &mockModuleRepo{}
	svc := NewModuleService(repo, nil)

	_, err := svc.Create(context.Background(), 1, CreateModuleRequest{Title: "no content"})

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Nil(t, repo.created)
}

func TestModuleServiceCreate(t *testing.T) {
	repo := &mockModuleRepo{}
	svc := NewModuleService(repo, nil)

	module, err := svc.Create(context.Background(), 7, CreateModuleRequest{Title: "Week 1", Content: "Reading list", Order: 1})
	require.NoError(t, err)
	assert.Equal(t, 7, module.CourseID)
	assert.Equal(t, 1, module.Order)
	assert.NotZero(t, module.ID)
}
