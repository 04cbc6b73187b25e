package shortener

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arthurflix/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string, timeout time.Duration) service.LinkShortener {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL+"/api", apiKey, &http.Client{Timeout: timeout}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestShorten_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "status flagged", body: `{"status":"success","shortenedUrl":"https://shrinkearn.com/abc"}`},
		{name: "bare field", body: `{"shortenedUrl":"https://shrinkearn.com/abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string]string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = map[string]string{
					"api":   r.URL.Query().Get("api"),
					"url":   r.URL.Query().Get("url"),
					"alias": r.URL.Query().Get("alias"),
				}
				_, _ = io.WriteString(w, tt.body)
			}, "key-123", time.Second)

			short, err := c.Shorten(context.Background(), "https://arthurflix.test/dl/tok/", "")
			require.NoError(t, err)
			assert.Equal(t, "https://shrinkearn.com/abc", short)
			assert.Equal(t, "key-123", gotQuery["api"])
			assert.Equal(t, "https://arthurflix.test/dl/tok/", gotQuery["url"])
			assert.Empty(t, gotQuery["alias"])
		})
	}
}

func TestShorten_PassesAlias(t *testing.T) {
	var alias string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		alias = r.URL.Query().Get("alias")
		_, _ = io.WriteString(w, `{"shortenedUrl":"https://s/x"}`)
	}, "key", time.Second)

	_, err := c.Shorten(context.Background(), "https://dest", "my-alias")
	require.NoError(t, err)
	assert.Equal(t, "my-alias", alias)
}

func TestShorten_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "error field",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"status":"error","error":"Invalid API token"}`)
			},
		},
		{
			name: "error list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"status":"error","error":["Alias already taken"]}`)
			},
		},
		{
			name: "unknown shape",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"status":"success"}`)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `<html>maintenance</html>`)
			},
		},
		{
			name: "http error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = io.WriteString(w, `{"shortenedUrl":"https://late"}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, "key", 50*time.Millisecond)

			short, err := c.Shorten(context.Background(), "https://dest", "")
			assert.ErrorIs(t, err, service.ErrShortenerUnavailable)
			assert.Empty(t, short)
		})
	}
}

func TestShorten_DisabledWithoutKey(t *testing.T) {
	called := false
	c := newTestClient(t, func(http.ResponseWriter, *http.Request) { called = true }, "", time.Second)

	_, err := c.Shorten(context.Background(), "https://dest", "")
	assert.ErrorIs(t, err, service.ErrShortenerUnavailable)
	assert.False(t, called)
}
