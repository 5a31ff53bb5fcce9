package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

// SendError writes a client/server error with a machine-friendly shape.
func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

// SendDetail writes a human-readable status message, used for 404s and
// state-conflict responses.
func SendDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// SendNotConfigured reports an unconfigured singleton content section.
func SendNotConfigured(c *gin.Context) {
	SendDetail(c, http.StatusNotFound, "Not configured")
}
