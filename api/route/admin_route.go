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

// NewAdminRouter registers the internal reconciliation routes. The caller
// attaches the token gate to the group.
func NewAdminRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	repo := repository.NewMovieRepository(db, domain.CollectionMovie)
	source := repository.NewOMDBSource(env.OMDBAPIURL, env.OMDBAPIKey, timeout)

	ctrl := controller.NewAdminController(usecase.NewReconcileUsecase(repo, source, timeout))

	group.POST("/movies/initialize", ctrl.Initialize)
	group.DELETE("/movies/:id", ctrl.Delete)
}
