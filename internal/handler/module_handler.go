package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclass/lms-api/internal/models"
	"github.com/openclass/lms-api/internal/service"
	appErrors "github.com/openclass/lms-api/pkg/errors"
	"github.com/openclass/lms-api/pkg/response"
)

type moduleService interface {
	ListByCourse(ctx context.Context, courseID int) ([]models.Module, error)
	Get(ctx context.Context, id int) (*models.Module, error)
	Create(ctx context.Context, courseID int, req service.CreateModuleRequest) (*models.Module, error)
}

// ModuleHandler exposes course module content.
type ModuleHandler struct {
	modules moduleService
}

// NewModuleHandler constructs ModuleHandler.
func NewModuleHandler(modules moduleService) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

// ListByCourse godoc
// @Summary List a course's modules
// @Tags Modules
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.Module
// @Router /api/courses/{id}/modules [get]
func (h *ModuleHandler) ListByCourse(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		// Unknown course id: an empty list, same as a course without modules.
		response.JSON(c, http.StatusOK, []models.Module{})
		return
	}
	modules, err := h.modules.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, modules)
}

// Get godoc
// @Summary Get module
// @Tags Modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} models.Module
// @Failure 404 {object} errors.Error
// @Router /api/modules/{id} [get]
func (h *ModuleHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Module not found"))
		return
	}
	module, err := h.modules.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, module)
}

// Create godoc
// @Summary Create module under a course
// @Tags Modules
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.CreateModuleRequest true "Module payload"
// @Success 201 {object} models.Module
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /api/courses/{id}/modules [post]
func (h *ModuleHandler) Create(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Invalid("id", "invalid course id"))
		return
	}
	var req service.CreateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid module payload"))
		return
	}
	module, err := h.modules.Create(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, module)
}
