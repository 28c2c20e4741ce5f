package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/openclass/lms-api/internal/middleware"
)

// Handlers bundles the portal's HTTP handlers for route registration.
type Handlers struct {
	Courses       *CourseHandler
	Modules       *ModuleHandler
	Assignments   *AssignmentHandler
	Announcements *AnnouncementHandler
	Users         *UserHandler
	Auth          *AuthHandler

	ExportEnabled bool
}

// RegisterRoutes mounts the API contract under /api. Read routes accept
// anonymous callers; mutating routes (and submission views) require an
// identified principal, enforced before the handler runs.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	requireUser := middleware.RequireUser()

	api := r.Group("/api")

	api.GET("/courses", h.Courses.List)
	api.POST("/courses", requireUser, h.Courses.Create)
	api.GET("/courses/:id", h.Courses.Get)
	api.POST("/courses/:id/enroll", requireUser, h.Courses.Enroll)

	api.GET("/courses/:id/modules", h.Modules.ListByCourse)
	api.POST("/courses/:id/modules", requireUser, h.Modules.Create)
	api.GET("/modules/:id", h.Modules.Get)

	api.GET("/courses/:id/assignments", h.Assignments.ListByCourse)
	api.POST("/courses/:id/assignments", requireUser, h.Assignments.Create)
	api.POST("/assignments/:id/submit", requireUser, h.Assignments.Submit)
	api.GET("/assignments/:id/submissions", requireUser, h.Assignments.ListSubmissions)
	api.GET("/assignments/:id/submissions/me", requireUser, h.Assignments.MySubmission)
	if h.ExportEnabled {
		api.GET("/assignments/:id/submissions/export", requireUser, h.Assignments.ExportSubmissions)
	}

	api.GET("/announcements", h.Announcements.List)
	api.POST("/announcements", requireUser, h.Announcements.Create)

	api.GET("/users/online", h.Users.Online)
	api.GET("/users/me/enrollments", requireUser, h.Users.MyEnrollments)

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/user", h.Auth.Me)
}
