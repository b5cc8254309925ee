package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabilidad_app/internal/apperrors"
	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/dto"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status and writes the body.
// failureMsg is the message shown for unexpected failures; their detail is only logged.
func respondError(c *gin.Context, err error, failureMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var pending *apperrors.ApprovalPendingError
	if errors.As(err, &pending) {
		logger.Warn("Entry stored as draft, approval pending", slog.String("entry_id", pending.EntryID), slog.String("error", err.Error()))
		c.JSON(http.StatusAccepted, dto.ApprovalPendingResponse{
			EntryID: pending.EntryID,
			State:   domain.EntryBorrador,
			Version: pending.Version,
			Message: "Entry saved as draft but approval failed; retry the approval",
		})
		return
	}

	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		body := gin.H{"error": validationErr.Error()}
		if validationErr.TotalDebit != nil && validationErr.TotalCredit != nil {
			body["totalDebit"] = validationErr.TotalDebit.StringFixed(2)
			body["totalCredit"] = validationErr.TotalCredit.StringFixed(2)
			body["difference"] = validationErr.Difference().StringFixed(2)
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Version conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// requireUserID reads the authenticated user or writes a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

func badRequest(c *gin.Context, what string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}
