package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
	"github.com/emrah/lessonhub/internal/pkg/logger"
)

// HandleAPIError maps service-layer errors to HTTP responses. Store errors
// are logged with detail server-side and surface as a generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrLessonNotOwned):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Lesson not found or unauthorized"})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrUsernameExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Username already exists"})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Server error"})
	}
}
