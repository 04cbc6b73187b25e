package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	mockService "arthurflix/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestStartBot_InitializesOnStart(t *testing.T) {
	bot := mockService.NewMockBotClient(t)
	lc := fxtest.NewLifecycle(t)

	bot.EXPECT().Init(mock.Anything).Return(nil).Once()

	startBot(botParams{Lc: lc, Bot: bot, Logger: slog.New(slog.DiscardHandler)})

	require.NoError(t, lc.Start(context.Background()))
	require.NoError(t, lc.Stop(context.Background()))
}

func TestStartBot_FailureIsNotFatal(t *testing.T) {
	var buf bytes.Buffer
	bot := mockService.NewMockBotClient(t)
	lc := fxtest.NewLifecycle(t)

	bot.EXPECT().Init(mock.Anything).Return(errors.New("bad token")).Once()

	startBot(botParams{Lc: lc, Bot: bot, Logger: slog.New(slog.NewTextHandler(&buf, nil))})

	require.NoError(t, lc.Start(context.Background()))
	assert.Contains(t, buf.String(), "Telegram bot unavailable")
	assert.Contains(t, buf.String(), "bad token")
	require.NoError(t, lc.Stop(context.Background()))
}
