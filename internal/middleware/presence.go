package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/openclass/lms-api/internal/models"
	"github.com/openclass/lms-api/internal/service"
)

// Heartbeat marks identified principals as online. Best-effort; the
// request proceeds whether or not the heartbeat lands.
func Heartbeat(presence *service.PresenceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if presence != nil {
			if value, exists := c.Get(ContextUserKey); exists {
				if claims, ok := value.(*models.Claims); ok {
					presence.Touch(c.Request.Context(), claims.UserID)
				}
			}
		}
		c.Next()
	}
}
