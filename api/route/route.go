package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/api/middleware"
	"github.com/screenlog/movie-catalog-backend/bootstrap"
	"github.com/screenlog/movie-catalog-backend/mongo"
)

// Setup wires every route group onto the engine.
func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("/v1")
	NewMovieRouter(env, timeout, db, publicRouter)

	internalRouter := gin.Group("/v1/internal")
	internalRouter.Use(middleware.TokenAuthMiddleware(env.SecretToken))
	NewAdminRouter(env, timeout, db, internalRouter)

	gin.GET("/healthy", statusHandler)
	gin.GET("/status", statusHandler)
}

func statusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
