package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	portssvc "github.com/SscSPs/contabilidad_app/internal/core/ports/services"
	"github.com/SscSPs/contabilidad_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.AuthorizerSvc
	Clock      func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a failed best-effort side effect
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the service clock, defaulting to time.Now in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// AuthorizeUser checks the user's role grants perm.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, perm domain.Permission) error {
	if s.Authorizer != nil {
		return s.Authorizer.AuthorizeUserAction(ctx, userID, perm)
	}
	s.LogDebug(ctx, "No authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("permission", string(perm)))
	return nil
}
