package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/domain"
)

// ErrorResponse writes the shared error envelope.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

// SuccessResponse writes a collection payload under the given key.
func SuccessResponse(c *gin.Context, key string, data interface{}, count int) {
	c.JSON(http.StatusOK, gin.H{
		key:     data,
		"count": count,
	})
}

// statusFromError maps the domain error taxonomy onto transport statuses.
// The no-op conditions are handled by the individual handlers before this
// fallback runs.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUpstreamNoMatch):
		return http.StatusNotFound, "UPSTREAM_NO_MATCH"
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "INVALID_REQUEST"
	case errors.Is(err, domain.ErrAlreadyPopulated):
		return http.StatusConflict, "ALREADY_POPULATED"
	case errors.Is(err, domain.ErrUpstreamFetch):
		return http.StatusBadGateway, "UPSTREAM_FETCH_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
