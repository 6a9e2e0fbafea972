// Package context carries per-request values (request id, caller, logger) from
// the echo middlewares down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type key int

const (
	keyRequestID key = iota
	keyLogger
	keyUserID
)

// HeaderXRequestID is echoed back on every response.
const HeaderXRequestID = echo.HeaderXRequestID

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// RequestID returns the request id or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

// SetUserID records the authenticated caller on both the echo context and the
// request context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.SetRequest(c.Request().WithContext(WithUserID(c.Request().Context(), userID)))
}

// UserID returns the authenticated caller of c.
func UserID(c echo.Context) (uuid.UUID, bool) {
	return UserIDFromContext(c.Request().Context())
}

// WithUserID stores the caller id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, keyUserID, userID)
}

// UserIDFromContext returns the caller id; false when unauthenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(keyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// WithLogger stores the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
