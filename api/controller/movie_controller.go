package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/domain"
)

// MovieController serves the public catalog endpoints.
type MovieController struct {
	queryUsecase     domain.QueryUsecase
	reconcileUsecase domain.ReconcileUsecase
}

func NewMovieController(query domain.QueryUsecase, reconcile domain.ReconcileUsecase) *MovieController {
	return &MovieController{
		queryUsecase:     query,
		reconcileUsecase: reconcile,
	}
}

// Fetch lists movies with title ordering and limit/page pagination.
func (ctrl *MovieController) Fetch(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be an integer")
		return
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "page must be an integer")
		return
	}

	movies, err := ctrl.queryUsecase.List(c.Request.Context(), limit, page)
	if err != nil {
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	SuccessResponse(c, "movies", movies, len(movies))
}

// GetByTitle serves the case-insensitive title search.
func (ctrl *MovieController) GetByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "title is required")
		return
	}

	movie, err := ctrl.queryUsecase.GetByTitle(c.Request.Context(), title)
	if err != nil {
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, movie)
}

func (ctrl *MovieController) GetByID(c *gin.Context) {
	movie, err := ctrl.queryUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, movie)
}

// Add fetches full detail for a title from the metadata source and
// reconciles it into the catalog.
func (ctrl *MovieController) Add(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	outcome, movie, err := ctrl.reconcileUsecase.UpsertByTitle(c.Request.Context(), req.Title)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyUpToDate) {
			c.JSON(http.StatusOK, gin.H{"message": "Movie already exists"})
			return
		}
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	log.Printf("movie %q reconciled: %s", movie.Title, outcome)
	switch outcome {
	case domain.UpsertAdded:
		c.JSON(http.StatusCreated, gin.H{"message": "Movie added successfully", "movie": movie.Public()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Movie updated successfully", "movie": movie.Public()})
	}
}
