package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"arthurflix/internal/delivery/web/response"
	domainerrors "arthurflix/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError_JSON(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "unavailable quality", err: errors.WithStack(domainerrors.ErrQualityUnavailable), wantStatus: http.StatusForbidden, wantCode: "QUALITY_UNAVAILABLE"},
		{name: "unknown token", err: errors.Wrap(domainerrors.ErrTokenNotFound, "lookup"), wantStatus: http.StatusGone, wantCode: "TOKEN_INVALID"},
		{name: "expired token", err: domainerrors.ErrTokenExpired, wantStatus: http.StatusGone, wantCode: "TOKEN_EXPIRED"},
		{name: "echo error", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/api/x")
			c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

			NewErrorMiddleware(discardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_HidesInternalDetails(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/x")
	c.Request().Header.Set(echo.HeaderXRequestedWith, "XMLHttpRequest")

	err := domainerrors.ErrTransactionFailed.WithDetails("pq: connection refused")
	NewErrorMiddleware(discardLogger()).HandleHTTPError(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_HandleHTTPError_PageFallsBackToText(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/dl/abc/")

	NewErrorMiddleware(discardLogger()).HandleHTTPError(domainerrors.ErrTokenExpired, c)

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, domainerrors.ErrTokenExpired.Message(), rec.Body.String())
}

func TestErrorMiddleware_HandleHTTPError_Committed(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/")
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(discardLogger()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
