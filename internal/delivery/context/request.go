// Package context carries request scoped values from the delivery layer to the layers below.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID carries the request id in and out of both servers.
const HeaderXRequestID = echo.HeaderXRequestID

type scopeKey struct{}

type requestScope struct {
	id     string
	logger *slog.Logger
}

// WithRequestScope binds a request id and the logger tagged with it to ctx.
func WithRequestScope(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, &requestScope{id: requestID, logger: logger})
}

func scopeOf(ctx context.Context) *requestScope {
	scope, _ := ctx.Value(scopeKey{}).(*requestScope)

	return scope
}

// GetRequestIDFromContext returns the bound request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	if scope := scopeOf(ctx); scope != nil {
		return scope.id
	}

	return ""
}

// GetLogger returns the request logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if scope := scopeOf(ctx); scope != nil {
		return scope.logger
	}

	return nil
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
