package controller

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// SectionController handles the page section endpoints.
type SectionController struct {
	sectionService service.SectionService
}

// NewSectionController creates a new SectionController.
func NewSectionController(sectionService service.SectionService) *SectionController {
	return &SectionController{sectionService: sectionService}
}

// List handles GET /api/sections.
func (sc *SectionController) List(c *gin.Context) {
	sections, err := sc.sectionService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, sections)
}

// Create handles POST /api/sections.
func (sc *SectionController) Create(c *gin.Context) {
	var req models.SectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := sc.sectionService.Create(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.CreatedResponse(c, section)
}

// Update handles PUT /api/sections/:id, replacing the section content.
func (sc *SectionController) Update(c *gin.Context) {
	var req models.SectionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	section, err := sc.sectionService.UpdateContent(c.Request.Context(), c.Param("id"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, section)
}

// Delete handles DELETE /api/sections/:id.
func (sc *SectionController) Delete(c *gin.Context) {
	if err := sc.sectionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, gin.H{"message": "Section deleted"})
}
