package service

import "context"

// BotClient processes Telegram webhook updates.
type BotClient interface {
	// Init connects to the Bot API once. Later calls return the first result.
	Init(ctx context.Context) error

	// HandleUpdate processes one raw update payload.
	HandleUpdate(ctx context.Context, payload []byte) error

	// Username is the bot's @name without the @, used to build deep links.
	Username() string
}
