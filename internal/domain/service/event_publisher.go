package service

import (
	"context"
	"time"
)

// DownloadEvent is published whenever a download flow hands out a link or file.
// Kind is one of the entity.DownloadKind values.
type DownloadEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	ItemID     string    `json:"item_id"`
	Quality    string    `json:"quality"`
	Kind       string    `json:"kind"`
	Token      string    `json:"token,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher hands download events to the stats pipeline. Publishing is best effort;
// callers log failures and carry on.
type EventPublisher interface {
	PublishDownloadEvent(ctx context.Context, event *DownloadEvent) error
	Close() error
}
