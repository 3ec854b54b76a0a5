package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newProtectedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := engine.Group("/internal")
	group.Use(TokenAuthMiddleware(secret))
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return engine
}

func TestTokenAuthAcceptsValidToken(t *testing.T) {
	engine := newProtectedRouter("s3cret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenAuthRejectsBadToken(t *testing.T) {
	engine := newProtectedRouter("s3cret")

	for name, header := range map[string]string{
		"wrong token":   "Bearer nope",
		"no bearer":     "s3cret",
		"empty header":  "",
		"bearer prefix": "Bearer ",
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			engine.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}
