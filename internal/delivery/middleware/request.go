// Package middleware holds the echo middleware shared by the site and the stats worker.
package middleware

import (
	"log/slog"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestMiddleware tags every request with an id and a logger carrying it. With debug
// enabled it also writes a detail line per request, after the handler returns.
type RequestMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewRequestMiddleware is the constructor for RequestMiddleware.
func NewRequestMiddleware(logger *slog.Logger, cfg *config.Config) *RequestMiddleware {
	return &RequestMiddleware{
		logger: logger,
		debug:  cfg != nil && cfg.Env.Debug,
	}
}

// Handle binds the request scope. Client supplied ids are kept so traces join up across hops.
func (m *RequestMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		c.SetRequest(req.WithContext(deliverycontext.WithRequestScope(req.Context(), requestID, reqLogger)))

		if !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.detail(c, reqLogger, time.Since(start), err)

		return err
	}
}

func (m *RequestMiddleware) detail(c echo.Context, logger *slog.Logger, latency time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	attrs := []slog.Attr{
		slog.String("route", c.Path()),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		attrs = append(attrs, slog.String("user_id", principal.UserID.String()))
	}

	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400, err != nil:
		// The error handler runs after this middleware, so a returned error has no status yet.
		level = slog.LevelWarn
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
	}

	logger.LogAttrs(req.Context(), level, "Request detail", attrs...)
}
