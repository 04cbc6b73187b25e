package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/constants"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCookieName = "arthurflix_session"

// SessionMiddleware resolves the session cookie into a principal and enforces one session per user.
type SessionMiddleware struct {
	accounts   usecase.AccountUsecase
	guard      usecase.SessionGuard
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Guard    usecase.SessionGuard
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	m := &SessionMiddleware{
		accounts:   params.Accounts,
		guard:      params.Guard,
		cookieName: defaultCookieName,
		logger:     params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			m.cookieName = cfg.Session.CookieName
		}
		m.secure = cfg.Session.Secure
	}

	return m
}

// Load attaches the principal of a live session. Requests without a usable cookie continue anonymously.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		principal, err := m.accounts.Authenticate(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, domainerrors.ErrSessionDisplaced) {
				m.ClearCookie(c)
				logger.Info("Signed out displaced session")

				return m.redirectDisplaced(c)
			}
			if !errors.Is(err, domainerrors.ErrSessionInvalid) {
				return err
			}
			logger.Debug("Dropping unusable session cookie", slog.Any("error", err))
			m.ClearCookie(c)

			return next(c)
		}

		current, err := m.guard.Check(ctx, principal.UserID, principal.SessionID)
		if err != nil {
			logger.Error("Session guard check failed", slog.Any("user_id", principal.UserID), slog.Any("error", err))
			current = true
		}

		if !current {
			if err := m.accounts.EndSession(ctx, principal.SessionID); err != nil {
				logger.Error("Failed to end displaced session", slog.Any("session_id", principal.SessionID), slog.Any("error", err))
			}
			m.ClearCookie(c)
			logger.Info("Signed out displaced session", slog.Any("user_id", principal.UserID))

			return m.redirectDisplaced(c)
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

func (m *SessionMiddleware) redirectDisplaced(c echo.Context) error {
	return c.Redirect(http.StatusFound, constants.LoginPath+"?reason="+constants.ReasonDuplicateSession)
}

// SetCookie stores a signed session token on the response.
func (m *SessionMiddleware) SetCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie removes the session cookie from the client.
func (m *SessionMiddleware) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
