package controller

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// ImageController handles the image asset endpoints.
type ImageController struct {
	imageService service.ImageService
}

// NewImageController creates a new ImageController.
func NewImageController(imageService service.ImageService) *ImageController {
	return &ImageController{imageService: imageService}
}

// List handles GET /api/images.
func (ic *ImageController) List(c *gin.Context) {
	images, err := ic.imageService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, images)
}

// Upload handles POST /api/images/upload. The multipart field is "image".
func (ic *ImageController) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	image, err := ic.imageService.Upload(c.Request.Context(), fh)
	if err != nil {
		writeError(c, err)
		return
	}
	response.CreatedResponse(c, image)
}

// Delete handles DELETE /api/images/:id.
func (ic *ImageController) Delete(c *gin.Context) {
	if err := ic.imageService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
