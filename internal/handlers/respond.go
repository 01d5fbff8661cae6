package handlers

import (
	"errors"
	"net/http"

	"Taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, status int, v any) {
	c.JSON(status, gin.H{"data": v})
}

func respondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondError(c *gin.Context, err error, fallback string) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": service.Message(err, fallback)})
}

// badRequest answers a body or query that could not be decoded.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
