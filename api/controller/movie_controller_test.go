package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/screenlog/movie-catalog-backend/domain"
	"github.com/screenlog/movie-catalog-backend/domain/mocks"
)

func newMovieRouter(query *mocks.QueryUsecase, reconcile *mocks.ReconcileUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	ctrl := NewMovieController(query, reconcile)

	group := engine.Group("/v1")
	group.GET("/movies", ctrl.Fetch)
	group.GET("/movies/search", ctrl.GetByTitle)
	group.GET("/movies/:id", ctrl.GetByID)
	group.POST("/movies", ctrl.Add)
	return engine
}

func TestFetchReturnsMovies(t *testing.T) {
	query := new(mocks.QueryUsecase)
	query.On("List", mock.Anything, 10, 1).Return([]domain.PublicMovie{
		{ID: "a", Title: "Alien", Year: 1979, ImdbID: "tt0078748"},
		{ID: "b", Title: "Brazil", Year: 1985, ImdbID: "tt0088846"},
	}, nil)

	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)
	assert.Contains(t, rec.Body.String(), `"Alien"`)
}

func TestFetchRejectsNonNumericPagination(t *testing.T) {
	query := new(mocks.QueryUsecase)
	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies?limit=ten", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	query.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchRejectsInvalidPage(t *testing.T) {
	query := new(mocks.QueryUsecase)
	query.On("List", mock.Anything, 10, 0).Return(nil, domain.ErrInvalidRequest)

	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies?page=0", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestGetByTitleRequiresTitle(t *testing.T) {
	query := new(mocks.QueryUsecase)
	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies/search", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	query.AssertNotCalled(t, "GetByTitle", mock.Anything, mock.Anything)
}

func TestGetByTitleFound(t *testing.T) {
	query := new(mocks.QueryUsecase)
	query.On("GetByTitle", mock.Anything, "THE MATRIX").Return(&domain.PublicMovie{
		ID: "m1", Title: "The Matrix", Year: 1999, ImdbID: "tt0133093",
	}, nil)

	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies/search?title=THE+MATRIX", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"The Matrix"`)
}

func TestGetByIDNotFound(t *testing.T) {
	query := new(mocks.QueryUsecase)
	query.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	engine := newMovieRouter(query, new(mocks.ReconcileUsecase))
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/movies/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestAddCreatesMovie(t *testing.T) {
	reconcile := new(mocks.ReconcileUsecase)
	reconcile.On("UpsertByTitle", mock.Anything, "The Matrix").Return(
		domain.UpsertAdded,
		&domain.Movie{ID: "m1", Title: "The Matrix", Year: 1999, ImdbID: "tt0133093"},
		nil,
	)

	engine := newMovieRouter(new(mocks.QueryUsecase), reconcile)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", strings.NewReader(`{"title":"The Matrix"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Movie added successfully")
}

func TestAddAlreadyUpToDateIsNoOpSuccess(t *testing.T) {
	reconcile := new(mocks.ReconcileUsecase)
	reconcile.On("UpsertByTitle", mock.Anything, "The Matrix").Return(
		domain.UpsertOutcome(""), nil, domain.ErrAlreadyUpToDate,
	)

	engine := newMovieRouter(new(mocks.QueryUsecase), reconcile)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", strings.NewReader(`{"title":"The Matrix"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Movie already exists")
}

func TestAddUpstreamNoMatch(t *testing.T) {
	reconcile := new(mocks.ReconcileUsecase)
	reconcile.On("UpsertByTitle", mock.Anything, "No Such Film").Return(
		domain.UpsertOutcome(""), nil, domain.ErrUpstreamNoMatch,
	)

	engine := newMovieRouter(new(mocks.QueryUsecase), reconcile)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", strings.NewReader(`{"title":"No Such Film"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPSTREAM_NO_MATCH")
}

func TestAddUpstreamFetchFailure(t *testing.T) {
	reconcile := new(mocks.ReconcileUsecase)
	reconcile.On("UpsertByTitle", mock.Anything, "The Matrix").Return(
		domain.UpsertOutcome(""), nil, domain.ErrUpstreamFetch,
	)

	engine := newMovieRouter(new(mocks.QueryUsecase), reconcile)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/movies", strings.NewReader(`{"title":"The Matrix"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
