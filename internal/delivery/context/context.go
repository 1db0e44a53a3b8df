// Package context carries request-scoped values (request ID, logger) between
// the delivery layer and the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// echoRequestIDKey is the echo.Context key the request ID middleware sets.
const echoRequestIDKey = "request_id"

// HeaderXRequestID is read from inbound requests and echoed on responses.
const HeaderXRequestID = "X-Request-Id"

func value[T any](ctx context.Context, key ctxKey) T {
	v, _ := ctx.Value(key).(T)

	return v
}

// GetRequestID returns the ID stored by the request ID middleware, or a fresh
// one when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	return value[string](ctx, requestIDKey)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	return value[*slog.Logger](ctx, loggerKey)
}

// GetLoggerOrDefault is what services call: the request logger when there is
// one, fallback otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
