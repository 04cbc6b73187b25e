package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultAttempts = 20
	defaultWindow   = 15 * time.Minute
)

// RateLimitMiddleware throttles form posts per client IP.
type RateLimitMiddleware struct {
	limiter  service.RateLimiter
	attempts int
	window   time.Duration
	logger   *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, cfg *config.Config, logger *slog.Logger) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		limiter:  limiter,
		attempts: defaultAttempts,
		window:   defaultWindow,
		logger:   logger,
	}
	if cfg != nil && cfg.RateLimit != nil {
		if cfg.RateLimit.LoginAttempts > 0 {
			m.attempts = cfg.RateLimit.LoginAttempts
		}
		if cfg.RateLimit.Window > 0 {
			m.window = cfg.RateLimit.Window
		}
	}

	return m
}

// Limit counts POSTs under scope. A post answered with a redirect succeeded and resets the counter.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			ctx := c.Request().Context()
			key := scope + ":" + c.RealIP()

			allowed, retryAfter := m.limiter.Allow(ctx, key, m.attempts, m.window)
			if !allowed {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limit exceeded",
					slog.String("scope", scope),
					slog.String("ip", c.RealIP()),
				)
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))

				return errors.WithStack(domainerrors.ErrTooManyAttempts)
			}

			err := next(c)
			if err == nil && isRedirect(c.Response().Status) {
				m.limiter.Reset(ctx, key)
			}

			return err
		}
	}
}

func isRedirect(status int) bool {
	return status >= http.StatusMultipleChoices && status < http.StatusBadRequest
}
