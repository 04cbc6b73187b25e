// Package shortener talks to the ShrinkEarn style link shortening API used to monetize download links.
package shortener

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/infra/metrics"

	"github.com/pkg/errors"
)

const maxResponseBytes = 64 << 10

// apiResponse covers every payload shape the API is known to return.
type apiResponse struct {
	Status       string          `json:"status"`
	ShortenedURL *string         `json:"shortenedUrl"`
	Error        json.RawMessage `json:"error"`
}

type client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLinkShortener builds the shortener client. Without an API key every call reports unavailable.
func NewLinkShortener(cfg *config.Config, logger *slog.Logger) service.LinkShortener {
	return New(cfg.Shortener.Endpoint, cfg.Shortener.APIKey, &http.Client{Timeout: cfg.Shortener.Timeout}, logger)
}

// New builds a client against endpoint with a caller supplied HTTP client.
func New(endpoint, apiKey string, httpClient *http.Client, logger *slog.Logger) service.LinkShortener {
	return &client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) Shorten(ctx context.Context, destination, alias string) (string, error) {
	short, err := c.shorten(ctx, destination, alias)
	if err != nil {
		metrics.ShortenerRequests.WithLabelValues("fallback").Inc()

		return "", errors.Wrap(service.ErrShortenerUnavailable, err.Error())
	}
	metrics.ShortenerRequests.WithLabelValues("success").Inc()

	return short, nil
}

func (c *client) shorten(ctx context.Context, destination, alias string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("shortener api key not configured")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	params := url.Values{}
	params.Set("api", c.apiKey)
	params.Set("url", destination)
	if alias != "" {
		params.Set("alias", alias)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors.Wrap(err, "read body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", errors.Wrap(err, "decode response")
	}

	switch {
	case payload.ShortenedURL != nil && *payload.ShortenedURL != "":
		logger.Debug("Short link created",
			slog.String("status", payload.Status),
			slog.String("short_url", *payload.ShortenedURL),
		)

		return *payload.ShortenedURL, nil
	case len(payload.Error) > 0:
		return "", errors.Errorf("api error: %s", errorText(payload.Error))
	default:
		return "", errors.Errorf("unexpected response: %s", truncate(string(body), 200))
	}
}

// errorText renders the error field, which is either a string or a list of strings.
func errorText(raw json.RawMessage) string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}

	return string(raw)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
