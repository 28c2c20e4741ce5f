package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openclass/lms-api/internal/middleware"
	"github.com/openclass/lms-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.Claims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.Claims)
	if !ok {
		return nil
	}
	return claims
}

// intParam parses a numeric path parameter. A malformed id never panics;
// callers decide whether it means "not found" or "bad request".
func intParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
