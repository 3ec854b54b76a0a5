package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/api/controller"
)

// TokenAuthMiddleware gates internal routes behind a static bearer token.
func TokenAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token != secret {
			controller.ErrorResponse(c, http.StatusForbidden, "UNAUTHORIZED", "invalid or missing token")
			c.Abort()
			return
		}
		c.Next()
	}
}
