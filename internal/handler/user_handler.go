package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclass/lms-api/internal/models"
	appErrors "github.com/openclass/lms-api/pkg/errors"
	"github.com/openclass/lms-api/pkg/response"
)

type presenceService interface {
	Online(ctx context.Context) ([]models.User, error)
}

type onlineUsersRecorder interface {
	SetOnlineUsers(n int)
}

// UserHandler exposes user-facing lookups that are not auth flows.
type UserHandler struct {
	presence    presenceService
	enrollments enrollmentService
	metrics     onlineUsersRecorder
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(presence presenceService, enrollments enrollmentService, metrics onlineUsersRecorder) *UserHandler {
	return &UserHandler{presence: presence, enrollments: enrollments, metrics: metrics}
}

// Online godoc
// @Summary List online users
// @Tags Users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users/online [get]
func (h *UserHandler) Online(c *gin.Context) {
	users, err := h.presence.Online(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.SetOnlineUsers(len(users))
	}
	response.JSON(c, http.StatusOK, users)
}

// MyEnrollments godoc
// @Summary List the course ids the current user is enrolled in
// @Tags Users
// @Produce json
// @Success 200 {array} int
// @Failure 401 {object} errors.Error
// @Router /api/users/me/enrollments [get]
func (h *UserHandler) MyEnrollments(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized"))
		return
	}
	courseIDs, err := h.enrollments.CourseIDs(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courseIDs)
}
