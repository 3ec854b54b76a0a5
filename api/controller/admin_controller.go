package controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/screenlog/movie-catalog-backend/domain"
)

// AdminController serves the token-gated internal endpoints.
type AdminController struct {
	reconcileUsecase domain.ReconcileUsecase
}

func NewAdminController(reconcile domain.ReconcileUsecase) *AdminController {
	return &AdminController{reconcileUsecase: reconcile}
}

// Initialize seeds an empty catalog from the metadata source.
func (ctrl *AdminController) Initialize(c *gin.Context) {
	written, err := ctrl.reconcileUsecase.BulkPopulate(c.Request.Context())
	if err != nil {
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	log.Printf("catalog initialized with %d movies", written)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Database initialized with %d movies.", written),
	})
}

func (ctrl *AdminController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.reconcileUsecase.DeleteByID(c.Request.Context(), id); err != nil {
		status, code := statusFromError(err)
		ErrorResponse(c, status, code, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": true,
		"movieId": id,
	})
}
