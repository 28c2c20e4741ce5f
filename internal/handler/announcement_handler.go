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

type announcementService interface {
	List(ctx context.Context) ([]models.AnnouncementWithAuthor, error)
	Create(ctx context.Context, authorID string, req service.CreateAnnouncementRequest) (*models.Announcement, error)
}

// AnnouncementHandler exposes portal-wide notices.
type AnnouncementHandler struct {
	announcements announcementService
}

// NewAnnouncementHandler constructs AnnouncementHandler.
func NewAnnouncementHandler(announcements announcementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// List godoc
// @Summary List announcements with their authors, newest first
// @Tags Announcements
// @Produce json
// @Success 200 {array} models.AnnouncementWithAuthor
// @Router /api/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, announcements)
}

// Create godoc
// @Summary Publish an announcement authored by the current user
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body service.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} errors.Error
// @Failure 401 {object} errors.Error
// @Router /api/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "Unauthorized"))
		return
	}
	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
		return
	}
	announcement, err := h.announcements.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, announcement)
}
