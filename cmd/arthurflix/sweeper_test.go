package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweepLoop_RunsUntilCancelled(t *testing.T) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	calls := make(chan struct{}, 4)

	maintenance.EXPECT().SweepExpiredTokens(mock.Anything, false).
		Return(nil, errors.New("db down")).Once()
	maintenance.EXPECT().SweepExpiredTokens(mock.Anything, false).
		RunAndReturn(func(context.Context, bool) (*entity.SweepReport, error) {
			calls <- struct{}{}

			return &entity.SweepReport{ExpiredDirect: 1}, nil
		}).Maybe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sweepLoop(ctx, maintenance, logger, time.Millisecond)
	}()

	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("sweep never ran after a failure")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep loop did not stop")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
