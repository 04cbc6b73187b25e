package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
)

// noStore keeps member-only pages out of browser and proxy caches.
const noStore = "max-age=0, no-cache, no-store, must-revalidate, private"

// GateMiddleware turns AccessGate decisions into redirects.
type GateMiddleware struct {
	gate   usecase.AccessGate
	logger *slog.Logger
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(gate usecase.AccessGate, logger *slog.Logger) *GateMiddleware {
	return &GateMiddleware{gate: gate, logger: logger}
}

// RequireMembership lets through signed-in users holding a valid membership key.
func (m *GateMiddleware) RequireMembership(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, noStore)

		decision, err := m.gate.Authorize(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Request().URL.RequestURI())
		if err != nil {
			return err
		}

		if !decision.Allowed() {
			return c.Redirect(http.StatusFound, decision.Path)
		}

		return next(c)
	}
}

// RequireLogin lets through any signed-in user, membership or not.
func (m *GateMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderCacheControl, noStore)

		if deliverycontext.GetPrincipal(c) == nil {
			return c.Redirect(http.StatusFound, constants.LoginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}

		return next(c)
	}
}
