package postgres

import (
	"bytes"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"arthurflix/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPoolStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	prev := sql.DBStats{WaitCount: 4, WaitDuration: time.Second}
	cur := sql.DBStats{
		MaxOpenConnections: 10,
		OpenConnections:    10,
		InUse:              9,
		Idle:               1,
		WaitCount:          7,
		WaitDuration:       time.Second + 80*time.Millisecond,
	}

	waitedBefore := testutil.ToFloat64(metrics.DBPoolWaitSeconds)
	recordPoolStats(logger, prev, cur)

	assert.InDelta(t, 10, testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("open")), 0)
	assert.InDelta(t, 9, testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("in_use")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DBPoolConnections.WithLabelValues("idle")), 0)
	assert.InDelta(t, 0.08, testutil.ToFloat64(metrics.DBPoolWaitSeconds)-waitedBefore, 1e-9)
	assert.Contains(t, buf.String(), "Postgres pool is saturated")
	assert.Contains(t, buf.String(), "waits=3")
}

func TestRecordPoolStats_NoWaitIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	stats := sql.DBStats{OpenConnections: 2, Idle: 2, WaitCount: 1, WaitDuration: time.Millisecond}

	recordPoolStats(logger, stats, stats)

	assert.Empty(t, buf.String())
}
