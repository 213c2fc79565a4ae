package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/studio-backend/internal/api/apperrors"
	"ctchen222/studio-backend/internal/api/response"
	"ctchen222/studio-backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error to an HTTP response. Infrastructure
// failures are logged with full detail but surfaced as a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, storage.ErrNotAnImage):
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateUser):
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		response.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
