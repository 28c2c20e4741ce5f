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

type assignmentService interface {
	ListByCourse(ctx context.Context, courseID int) ([]models.Assignment, error)
	Create(ctx context.Context, courseID int, req service.CreateAssignmentRequest) (*models.Assignment, error)
}

type submissionService interface {
	Submit(ctx context.Context, assignmentID int, studentID string, req service.SubmitRequest) (*models.Submission, error)
	ListByAssignment(ctx context.Context, assignmentID int) ([]models.Submission, error)
	GetForStudent(ctx context.Context, assignmentID int, studentID string) (*models.Submission, error)
}

type exportService interface {
	Submissions(ctx context.Context, assignmentID int, format string) (*service.ExportFile, error)
}

// AssignmentHandler exposes assignments and their submissions.
type AssignmentHandler struct {
	assignments assignmentService
	submissions submissionService
	exports     exportService
}

// NewAssignmentHandler constructs AssignmentHandler.
func NewAssignmentHandler(assignments assignmentService, submissions submissionService, exports exportService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments, submissions: submissions, exports: exports}
}

// ListByCourse godoc
// @Summary List a course's assignments
// @Tags Assignments
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} models.Assignment
// @Router /api/courses/{id}/assignments [get]
func (h *AssignmentHandler) ListByCourse(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		response.JSON(c, http.StatusOK, []models.Assignment{})
		return
	}
	assignments, err := h.assignments.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments)
}

// Create godoc
// @Summary Create assignment under a course
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} models.Assignment
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /api/courses/{id}/assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	courseID, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Invalid("id", "invalid course id"))
		return
	}
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignment, err := h.assignments.Create(c.Request.Context(), courseID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// Submit godoc
// @Summary Submit the current user's answer for an assignment
// @Tags Assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param payload body service.SubmitRequest true "Submission payload"
// @Success 201 {object} models.Submission
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /api/assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized"))
		return
	}
	assignmentID, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Invalid("id", "invalid assignment id"))
		return
	}
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid submission payload"))
		return
	}
	submission, err := h.submissions.Submit(c.Request.Context(), assignmentID, claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, submission)
}

// ListSubmissions godoc
// @Summary List an assignment's submissions
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {array} models.Submission
// @Failure 401 {object} errors.Error
// @Router /api/assignments/{id}/submissions [get]
func (h *AssignmentHandler) ListSubmissions(c *gin.Context) {
	assignmentID, ok := intParam(c, "id")
	if !ok {
		response.JSON(c, http.StatusOK, []models.Submission{})
		return
	}
	submissions, err := h.submissions.ListByAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submissions)
}

// MySubmission godoc
// @Summary Get the current user's submission for an assignment
// @Tags Assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} models.Submission
// @Failure 401 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /api/assignments/{id}/submissions/me [get]
func (h *AssignmentHandler) MySubmission(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized"))
		return
	}
	assignmentID, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Submission not found"))
		return
	}
	submission, err := h.submissions.GetForStudent(c.Request.Context(), assignmentID, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, submission)
}

// ExportSubmissions godoc
// @Summary Export an assignment's submissions as CSV or PDF
// @Tags Assignments
// @Produce text/csv
// @Produce application/pdf
// @Param id path int true "Assignment ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Router /api/assignments/{id}/submissions/export [get]
func (h *AssignmentHandler) ExportSubmissions(c *gin.Context) {
	assignmentID, ok := intParam(c, "id")
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Assignment not found"))
		return
	}
	format := c.DefaultQuery("format", "csv")
	file, err := h.exports.Submissions(c.Request.Context(), assignmentID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
