package middleware

import (
	"net/http"
	"testing"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteConfig() *config.Config {
	return &config.Config{Site: &config.SiteConfig{
		DefaultSite: "arthurflix",
		Domains: map[string]config.SiteDomain{
			"arthurflix": {Name: "ArthurFlix", Domain: "arthurflix.com", PrimaryColor: "#e50914"},
			"bollyfun":   {Name: "BollyFun", Domain: "bollyfun.in", PrimaryColor: "#ff9933"},
		},
	}}
}

func TestSiteMiddleware_Resolve(t *testing.T) {
	m := NewSiteMiddleware(siteConfig())

	tests := []struct {
		host string
		want string
	}{
		{host: "www.ArthurFlix.com", want: "ArthurFlix"},
		{host: "bollyfun.in:8000", want: "BollyFun"},
		{host: "staging-bollyfun.example.net", want: "BollyFun"},
		{host: "localhost:8000", want: "ArthurFlix"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Resolve(tt.host).Name)
		})
	}
}

func TestSiteMiddleware_Resolve_Unconfigured(t *testing.T) {
	m := NewSiteMiddleware(&config.Config{})

	assert.Equal(t, fallbackSite, m.Resolve("example.org"))
}

func TestSiteMiddleware_Handle(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")
	c.Request().Host = "bollyfun.in"

	require.NoError(t, NewSiteMiddleware(siteConfig()).Handle(okHandler)(c))

	site := deliverycontext.GetSite(c)
	require.NotNil(t, site)
	assert.Equal(t, "bollyfun", site.Key)
}
