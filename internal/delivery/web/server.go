// Package web serves the catalogue site.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"arthurflix/config"
	"arthurflix/internal/delivery"
	"arthurflix/internal/delivery/middleware"
	webmiddleware "arthurflix/internal/delivery/web/middleware"
	"arthurflix/internal/delivery/web/router"
	"arthurflix/internal/delivery/web/templates"
	"arthurflix/internal/delivery/web/validator"
	"arthurflix/internal/domain/lifecycle"
	"arthurflix/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const (
	csrfCookieName = "csrftoken"
	csrfFormField  = "csrfmiddlewaretoken"
	csrfHeader     = "X-CSRFToken"

	defaultBodyLimit = "2M"
)

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the site server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	SessionMiddleware *webmiddleware.SessionMiddleware
	SiteMiddleware    *webmiddleware.SiteMiddleware
	RouterParams      router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := NewEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with every route registered.
func NewEcho(params ServerParams) (*echo.Echo, error) {
	renderer, err := templates.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load templates")
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request id and request scoped logger, before anything that logs
	requestMiddleware := middleware.NewRequestMiddleware(params.Logger, params.Cfg)
	e.Use(requestMiddleware.Handle)

	// 3. Access log
	e.Use(slogecho.New(params.Logger))

	// 4. Metrics
	e.Use(metrics.Middleware())

	// 5. Request body size limit
	bodyLimit := params.Cfg.HTTP.MaxRequestBodySize
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	// 6. Site branding for every page, error pages included
	e.Use(params.SiteMiddleware.Handle)

	errorMiddleware := webmiddleware.NewErrorMiddleware(params.Logger)
	e.HTTPErrorHandler = errorMiddleware.HandleHTTPError
	e.Validator = validator.New()
	e.Renderer = renderer

	r := router.NewRouter(params.RouterParams)
	r.RegisterPublicRoutes(e)

	secure := params.Cfg.Session != nil && params.Cfg.Session.Secure
	site := e.Group("",
		echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			TokenLookup:    "form:" + csrfFormField + ",header:" + csrfHeader,
			CookieName:     csrfCookieName,
			CookiePath:     "/",
			CookieSecure:   secure,
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteLaxMode,
		}),
		params.SessionMiddleware.Load,
	)
	r.RegisterRoutes(site)

	return e, nil
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting web server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
