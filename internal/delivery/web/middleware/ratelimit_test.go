package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arthurflix/config"
	domainerrors "arthurflix/internal/domain/errors"
	mockService "arthurflix/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postContext() (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newContext(http.MethodPost, "/login/")
	c.Request().RemoteAddr = "203.0.113.7:5555"

	return c, rec
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{LoginAttempts: 5, Window: time.Minute}}

	t.Run("get is not counted", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		c, rec := newContext(http.MethodGet, "/login/")

		require.NoError(t, NewRateLimitMiddleware(limiter, cfg, discardLogger()).Limit("login")(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failed post is counted", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7", 5, time.Minute).Return(true, time.Duration(0)).Once()
		c, rec := postContext()

		require.NoError(t, NewRateLimitMiddleware(limiter, cfg, discardLogger()).Limit("login")(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("successful post resets", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7", 5, time.Minute).Return(true, time.Duration(0)).Once()
		limiter.EXPECT().Reset(mock.Anything, "login:203.0.113.7").Return().Once()
		c, rec := postContext()

		redirect := func(c echo.Context) error { return c.Redirect(http.StatusFound, "/") }
		require.NoError(t, NewRateLimitMiddleware(limiter, cfg, discardLogger()).Limit("login")(redirect)(c))
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("exceeded", func(t *testing.T) {
		limiter := mockService.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7", 5, time.Minute).Return(false, 42*time.Second).Once()
		c, rec := postContext()

		err := NewRateLimitMiddleware(limiter, cfg, discardLogger()).Limit("login")(okHandler)(c)
		require.ErrorIs(t, err, domainerrors.ErrTooManyAttempts)
		assert.Equal(t, "42", rec.Header().Get("Retry-After"))
	})
}

func TestNewRateLimitMiddleware_Defaults(t *testing.T) {
	m := NewRateLimitMiddleware(mockService.NewMockRateLimiter(t), &config.Config{}, discardLogger())

	assert.Equal(t, defaultAttempts, m.attempts)
	assert.Equal(t, defaultWindow, m.window)
}
