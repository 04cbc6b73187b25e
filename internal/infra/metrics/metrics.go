// Package metrics holds the Prometheus collectors of the site and worker.
//
// Collectors register with the default registry at init, so /metrics exposes them
// together with the Go runtime and process collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "arthurflix/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "arthurflix"

// TokensIssued counts issued tokens by kind (download, direct) and outcome (created, reused).
var TokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "tokens_issued_total",
	Help:      "Download and direct tokens handed out.",
}, []string{"kind", "outcome"})

// TokenValidations counts validation results by kind and state (valid, expired, not_found).
var TokenValidations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "token_validations_total",
	Help:      "Token validation outcomes.",
}, []string{"kind", "state"})

// ShortenerRequests counts link shortener calls by result (success, fallback).
var ShortenerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "shortener_requests_total",
	Help:      "Link shortener calls by result.",
}, []string{"result"})

// SessionEvents counts session guard activity (login, logout, displaced, duplicate_rejected).
var SessionEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "session_events_total",
	Help:      "Single-session enforcement events.",
}, []string{"event"})

// AccessDecisions counts access gate results by reason (allow, login_required, activate, renew).
var AccessDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "access_decisions_total",
	Help:      "Access gate decisions.",
}, []string{"reason"})

// TokensSwept counts rows removed by the expired token sweep.
var TokensSwept = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "tokens_swept_total",
	Help:      "Expired tokens deleted by the sweeper.",
}, []string{"kind"})

// DownloadEventsProcessed counts stats worker events by result (stored, dropped, invalid, failed).
var DownloadEventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "download_events_processed_total",
	Help:      "Download events handled by the stats worker.",
}, []string{"result"})

// HTTPRequests counts requests by method, route and status.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "http_requests_total",
	Help:      "HTTP requests handled.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks request latency by method and route.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// EventsPublished counts download event publishes by result (published, failed, dropped).
var EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "events_published_total",
	Help:      "Download events handed to the event bus.",
}, []string{"result"})

// DBPoolConnections reports the Postgres pool by state (open, in_use, idle).
var DBPoolConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "db_pool_connections",
	Help:      "Postgres pool connections by state.",
}, []string{"state"})

// DBPoolWaitSeconds accumulates time spent waiting for a free Postgres connection.
var DBPoolWaitSeconds = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "db_pool_wait_seconds_total",
	Help:      "Time spent waiting for a Postgres connection.",
})

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records HTTP counters using the echo route template, not the raw path.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusOf(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// statusOf mirrors the status the error handler will send for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	return http.StatusInternalServerError
}
