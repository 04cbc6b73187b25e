package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestMiddleware_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewRequestMiddleware(logger, &config.Config{})

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			var seenLogger *slog.Logger
			err := m.Handle(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotEmpty(t, seenID)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seenID)
			}
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.NotNil(t, seenLogger)
		})
	}
}

func TestRequestMiddleware_DebugDetail(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	m := NewRequestMiddleware(logger, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/alpha/?q=x", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	c := e.NewContext(req, httptest.NewRecorder())

	err := m.Handle(func(echo.Context) error { return errors.New("boom") })(c)

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "Request detail")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "request_id=req-9")
	assert.Contains(t, out, `query="q=x"`)
	assert.Contains(t, out, "error=boom\n")
}

func TestRequestMiddleware_QuietWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := NewRequestMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })(c))
	assert.Empty(t, buf.String())
}
