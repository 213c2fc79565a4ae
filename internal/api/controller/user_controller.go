package controller

import (
	"net/http"

	"ctchen222/studio-backend/internal/api/models"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles the credential endpoints.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := uc.userService.Register(c.Request.Context(), &req); err != nil {
		writeError(c, err)
		return
	}

	response.CreatedResponse(c, gin.H{"message": "User registered successfully"})
}

// Login handles the user login endpoint.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}

	response.SuccessResponse(c, models.LoginResponse{Token: token})
}
