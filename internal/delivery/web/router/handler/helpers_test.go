package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	webmiddleware "arthurflix/internal/delivery/web/middleware"
	"arthurflix/internal/delivery/web/templates"
	"arthurflix/internal/delivery/web/validator"
	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := templates.New()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()
	e.HTTPErrorHandler = webmiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func testSessionMiddleware() *webmiddleware.SessionMiddleware {
	return webmiddleware.NewSessionMiddleware(webmiddleware.SessionMiddlewareParams{
		Config: &config.Config{Session: &config.SessionConfig{CookieName: "af_session"}},
		Logger: discardLogger(),
	})
}

func testPrincipal() *entity.Principal {
	return &entity.Principal{UserID: uuid.New(), SessionID: uuid.New(), Username: "arthur"}
}

// request describes one call to a handler.
type request struct {
	method    string
	target    string
	form      url.Values
	params    map[string]string
	principal *entity.Principal
	header    map[string]string
}

// serve runs h the way the router would, sending returned errors through the error handler.
func serve(t *testing.T, e *echo.Echo, h echo.HandlerFunc, r request) *httptest.ResponseRecorder {
	t.Helper()

	if r.method == "" {
		r.method = http.MethodGet
	}

	var body io.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for k, v := range r.header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(r.params) > 0 {
		names := make([]string, 0, len(r.params))
		values := make([]string, 0, len(r.params))
		for name, value := range r.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if r.principal != nil {
		deliverycontext.SetPrincipal(c, r.principal)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
