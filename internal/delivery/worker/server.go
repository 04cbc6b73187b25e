// Package worker serves the Pub/Sub push endpoint of the stats worker.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"arthurflix/config"
	"arthurflix/internal/delivery"
	"arthurflix/internal/delivery/middleware"
	"arthurflix/internal/delivery/worker/handler"
	"arthurflix/internal/domain/lifecycle"
	"arthurflix/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type statsServer struct {
	port   int
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for the stats worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer registers the worker with the fx lifecycle.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &statsServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		echo:   NewEcho(params.Logger, params.Cfg, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker routes: health, metrics and the push endpoint.
func NewEcho(logger *slog.Logger, cfg *config.Config, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestMiddleware(logger, cfg).Handle)
	// Deliveries are frequent; successful ones only show up at debug.
	e.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelDebug,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.POST("/push", push.HandlePush)

	return e
}

func (s *statsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting stats worker", slog.String("host_port", hostPort))

	err := s.echo.Start(hostPort)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *statsServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down stats worker")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
