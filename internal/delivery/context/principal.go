package context

import (
	"arthurflix/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// echo.Context keys. Values set here live only as long as the echo context.
const (
	principalKey = "principal"
	siteKey      = "site"
)

// SetPrincipal attaches the authenticated principal to the request.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(principalKey, principal)
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(principalKey).(*entity.Principal)

	return principal
}

// SetSite attaches the site branding to the request.
func SetSite(c echo.Context, site *entity.Site) {
	c.Set(siteKey, site)
}

// GetSite returns the site branding, or nil when the site middleware did not run.
func GetSite(c echo.Context) *entity.Site {
	site, _ := c.Get(siteKey).(*entity.Site)

	return site
}
