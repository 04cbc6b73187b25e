package middleware

import (
	"maps"
	"slices"
	"strings"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

var fallbackSite = entity.Site{
	Key:          "arthurflix",
	Name:         "ArthurFlix",
	Domain:       "arthurflix.com",
	PrimaryColor: "#e50914",
}

// SiteMiddleware picks the branding for the request host.
type SiteMiddleware struct {
	sites       map[string]entity.Site
	keys        []string
	defaultSite entity.Site
}

// NewSiteMiddleware is the constructor for SiteMiddleware.
func NewSiteMiddleware(cfg *config.Config) *SiteMiddleware {
	m := &SiteMiddleware{sites: map[string]entity.Site{}, defaultSite: fallbackSite}
	if cfg == nil || cfg.Site == nil {
		return m
	}

	for key, d := range cfg.Site.Domains {
		m.sites[key] = entity.Site{
			Key:          key,
			Name:         d.Name,
			Domain:       d.Domain,
			Logo:         d.Logo,
			PrimaryColor: d.PrimaryColor,
		}
	}
	m.keys = slices.Sorted(maps.Keys(m.sites))

	if site, ok := m.sites[cfg.Site.DefaultSite]; ok {
		m.defaultSite = site
	}

	return m
}

// Resolve returns the site whose key or domain appears in host.
func (m *SiteMiddleware) Resolve(host string) entity.Site {
	host = strings.ToLower(host)
	for _, key := range m.keys {
		site := m.sites[key]
		if strings.Contains(host, strings.ToLower(key)) ||
			(site.Domain != "" && strings.Contains(host, strings.ToLower(site.Domain))) {
			return site
		}
	}

	return m.defaultSite
}

// Handle stores the resolved site on the request.
func (m *SiteMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		site := m.Resolve(c.Request().Host)
		deliverycontext.SetSite(c, &site)

		return next(c)
	}
}
