package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openclass/lms-api/internal/models"
)

// ModuleRepository handles persistence of course modules.
type ModuleRepository struct {
	db *sqlx.DB
}

// NewModuleRepository constructs the repository.
func NewModuleRepository(db *sqlx.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

// ListByCourse returns a course's modules ordered by their display order.
func (r *ModuleRepository) ListByCourse(ctx context.Context, courseID int) ([]models.Module, error) {
	const query = `SELECT id, course_id, title, content, "order" FROM modules WHERE course_id = $1 ORDER BY "order" ASC`
	modules := []models.Module{}
	if err := r.db.SelectContext(ctx, &modules, query, courseID); err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

// FindByID returns a module by its ID.
func (r *ModuleRepository) FindByID(ctx context.Context, id int) (*models.Module, error) {
	const query = `SELECT id, course_id, title, content, "order" FROM modules WHERE id = $1`
	var module models.Module
	if err := r.db.GetContext(ctx, &module, query, id); err != nil {
		return nil, err
	}
	return &module, nil
}

// Create inserts a module and fills in the generated id. Referential
// integrity against courses is enforced by the store's foreign key.
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	const query = `INSERT INTO modules (course_id, title, content, "order")
VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &module.ID, query, module.CourseID, module.Title, module.Content, module.Order); err != nil {
		return fmt.Errorf("create module: %w", err)
	}
	return nil
}
