package controller

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/api/service"
	"ctchen222/studio-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// CardController handles the card endpoints.
type CardController struct {
	cardService service.CardService
	uploads     *storage.UploadStore
}

// NewCardController creates a new CardController.
func NewCardController(cardService service.CardService, uploads *storage.UploadStore) *CardController {
	return &CardController{
		cardService: cardService,
		uploads:     uploads,
	}
}

// List handles GET /api/cards.
func (cc *CardController) List(c *gin.Context) {
	cards, err := cc.cardService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, cards)
}

// Create handles POST /api/cards. The body is multipart: title,
// description and an optional image file.
func (cc *CardController) Create(c *gin.Context) {
	var form models.CardForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	imagePath, err := cc.saveImageIfPresent(c)
	if err != nil {
		writeError(c, err)
		return
	}

	card, err := cc.cardService.Create(c.Request.Context(), &form, imagePath)
	if err != nil {
		writeError(c, err)
		return
	}
	response.CreatedResponse(c, card)
}

// Update handles PUT /api/cards/:id. Without a new file the previous
// image path from the form is kept.
func (cc *CardController) Update(c *gin.Context) {
	var form models.CardForm
	if err := c.ShouldBind(&form); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	form.Image = c.PostForm("image")

	imagePath, err := cc.saveImageIfPresent(c)
	if err != nil {
		writeError(c, err)
		return
	}

	card, err := cc.cardService.Update(c.Request.Context(), c.Param("id"), &form, imagePath)
	if err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, card)
}

// Delete handles DELETE /api/cards/:id.
func (cc *CardController) Delete(c *gin.Context) {
	if err := cc.cardService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.SuccessResponse(c, gin.H{"message": "Card deleted"})
}

// saveImageIfPresent stores the uploaded image file when the multipart
// body has one, returning nil when the field is absent.
func (cc *CardController) saveImageIfPresent(c *gin.Context) (*string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	path, err := cc.uploads.Save(fh)
	if err != nil {
		return nil, err
	}
	return &path, nil
}
