package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError writes the status matching err. notFoundStatus lets write endpoints
// answer 400 when an id inside the request body does not resolve, while path lookups
// answer 404. Internal errors never leak their message.
func respondServiceError(c *gin.Context, err error, notFoundStatus int, internalMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := apperrors.StatusCode(err)
	if errors.Is(err, apperrors.ErrNotFound) {
		status = notFoundStatus
	}

	if status >= http.StatusInternalServerError {
		logger.Error(internalMsg, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: internalMsg})
		return
	}
	logger.Warn(internalMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// actorFromContext returns the employee ID put in the context by AuthMiddleware, or answers 401.
func actorFromContext(c *gin.Context) (string, bool) {
	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Acting employee ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return actorID, true
}
