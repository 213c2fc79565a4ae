package controller

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// ResultController handles the exam result endpoints.
type ResultController struct {
	resultService service.ResultService
}

// NewResultController creates a new ResultController.
func NewResultController(resultService service.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// List handles GET /api/results.
func (rc *ResultController) List(c *gin.Context) {
	results, err := rc.resultService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, results)
}

// Create handles POST /api/results.
func (rc *ResultController) Create(c *gin.Context) {
	var req models.ResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := rc.resultService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.CreatedResponse(c, result)
}

// Delete handles DELETE /api/results/:id.
func (rc *ResultController) Delete(c *gin.Context) {
	if err := rc.resultService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
