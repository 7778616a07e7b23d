package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/valecard/valecard_backend/internal/apperrors"
	"github.com/valecard/valecard_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func middlewareLogger(c *gin.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(c.Request.Context())
}

// apiKeyHeader carries the issuing company's API key on card creation and
// recharge requests.
const apiKeyHeader = "x-api-key"

// respondError maps a service error onto the HTTP boundary: 422 for
// unprocessable input, 404 for missing resources, 409 for state conflicts,
// 401 for refused secrets, 500 for anything untagged.
func respondError(c *gin.Context, err error) {
	logger := middlewareLogger(c)

	var status int
	switch {
	case errors.Is(err, apperrors.ErrUnprocessable):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}

// bindingError reports malformed or missing body input, which the error
// taxonomy classifies as unprocessable.
func bindingError(c *gin.Context, err error) {
	middlewareLogger(c).Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request format: " + err.Error()})
}
