// Package router wires the site's routes to their handlers and middleware.
package router

import (
	"arthurflix/internal/delivery/web/middleware"
	"arthurflix/internal/delivery/web/router/handler"
	"arthurflix/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	MembershipHandler *handler.MembershipHandler
	CatalogueHandler  *handler.CatalogueHandler
	ProfileHandler    *handler.ProfileHandler
	DownloadHandler   *handler.DownloadHandler
	TelegramHandler   *handler.TelegramHandler
	GateMiddleware    *middleware.GateMiddleware
	RateLimit         *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth       *handler.AuthHandler
	membership *handler.MembershipHandler
	catalogue  *handler.CatalogueHandler
	profile    *handler.ProfileHandler
	download   *handler.DownloadHandler
	telegram   *handler.TelegramHandler
	gate       *middleware.GateMiddleware
	rateLimit  *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:       params.AuthHandler,
		membership: params.MembershipHandler,
		catalogue:  params.CatalogueHandler,
		profile:    params.ProfileHandler,
		download:   params.DownloadHandler,
		telegram:   params.TelegramHandler,
		gate:       params.GateMiddleware,
		rateLimit:  params.RateLimit,
	}
}

// RegisterPublicRoutes sets up routes that must answer before sessions and CSRF are involved.
func (r *router) RegisterPublicRoutes(e *echo.Echo) {
	e.GET("/health/", handler.HealthCheck)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/telegram/webhook/", r.telegram.Webhook)
}

// RegisterRoutes sets up the site pages on g.
func (r *router) RegisterRoutes(g *echo.Group) {
	// Accounts
	g.GET("/login/", r.auth.LoginPage)
	g.POST("/login/", r.auth.Login, r.rateLimit.Limit("login"))
	g.GET("/register/", r.auth.RegisterPage)
	g.POST("/register/", r.auth.Register, r.rateLimit.Limit("register"))
	g.GET("/logout/", r.auth.Logout)
	g.POST("/logout/", r.auth.Logout)
	g.GET("/session-ended/", r.auth.SessionEnded)

	// Download flow, reachable from the short link without a session
	g.GET("/dl/:token/", r.download.Resolve)
	g.GET("/download.html", r.download.Landing)
	g.GET("/direct/:token/", r.download.Direct)

	// Membership keys need a user but not a valid key
	keys := g.Group("/key", r.gate.RequireLogin)
	{
		keys.GET("/activate/", r.membership.ActivatePage)
		keys.POST("/activate/", r.membership.Activate)
	}

	// Everything else requires a valid membership
	gated := g.Group("", r.gate.RequireMembership)
	{
		gated.GET("/", r.catalogue.Home)
		gated.GET("/category/:name/", r.catalogue.Category)
		gated.GET("/movie/:slug/", r.catalogue.Detail)
		gated.GET("/episodes/:slug/", r.catalogue.Episodes)
		gated.GET("/stream/:quality/:slug/", r.catalogue.Stream)
		gated.GET("/stream/:quality/:slug/:episode/", r.catalogue.Stream)
		gated.GET("/download/:quality/:slug/", r.download.Start)

		gated.GET("/profile/", r.profile.Show)
		gated.POST("/profile/change-avatar/", r.profile.ChangeAvatar)

		gated.POST("/catalogue/toggle/", r.catalogue.Toggle)
		gated.GET("/catalogue/status/:item_id/", r.catalogue.LibraryStatus)
	}
}
