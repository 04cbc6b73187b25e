package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"arthurflix/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormLogger(base, cfg), &buf
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantOut bool
	}{
		{name: "failure", begin: time.Now(), err: errors.New("connection reset"), want: "Query failed", wantOut: true},
		{name: "not found is routine", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow", begin: time.Now().Add(-time.Second), want: "Slow query", wantOut: true},
		{name: "fast query hidden", begin: time.Now()},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "msg=Query", wantOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, query("SELECT 1"), tt.err)

			if !tt.wantOut {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=gorm")
			assert.Contains(t, buf.String(), `sql="SELECT 1"`)
		})
	}
}

func TestGormLogger_LogModeSilences(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	silent := l.LogMode(logger.Silent)
	silent.Trace(context.Background(), time.Now(), query("SELECT 1"), errors.New("boom"))
	silent.Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %d", 3)
	assert.Contains(t, buf.String(), "pool 3")
}
