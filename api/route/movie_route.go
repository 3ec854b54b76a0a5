package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/api/controller"
	"github.com/screenlog/movie-catalog-backend/bootstrap"
	"github.com/screenlog/movie-catalog-backend/domain"
	"github.com/screenlog/movie-catalog-backend/mongo"
	"github.com/screenlog/movie-catalog-backend/repository"
	"github.com/screenlog/movie-catalog-backend/usecase"
)

// NewMovieRouter registers the public catalog routes.
func NewMovieRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewMovieRepository(db, domain.CollectionMovie)
	source := repository.NewOMDBSource(env.OMDBAPIURL, env.OMDBAPIKey, timeout)

	ctrl := controller.NewMovieController(
		usecase.NewQueryUsecase(repo, timeout),
		usecase.NewReconcileUsecase(repo, source, timeout),
	)

	group.GET("/movies", ctrl.Fetch)
	group.GET("/movies/search", ctrl.GetByTitle)
	group.GET("/movies/:id", ctrl.GetByID)
	group.POST("/movies", ctrl.Add)
}
