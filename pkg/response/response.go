package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/openclass/lms-api/pkg/errors"
)

// The portal client consumes resources as plain JSON bodies: arrays and
// objects exactly as modeled, errors as {"message": "...", "field": "..."}.
// These helpers keep every handler on that contract.

// JSON sends a success response with the payload as the entire body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds 200 with a {"message": ...} body.
func Message(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{"message": message})
}

// Error sends an error response converting the error to the shared shape.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, appErr)
}
