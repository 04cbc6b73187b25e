package entity

import (
	"time"

	"github.com/google/uuid"
)

// DownloadKind tells which delivery flow produced a download event.
type DownloadKind string

const (
	DownloadKindToken    DownloadKind = "token"
	DownloadKindDirect   DownloadKind = "direct"
	DownloadKindTelegram DownloadKind = "telegram"
)

// DownloadStat is the aggregated count of one (item, quality, kind) triple.
type DownloadStat struct {
	ItemID    uuid.UUID
	Quality   Quality
	Kind      DownloadKind
	Count     int64
	UpdatedAt time.Time
}

// SweepReport summarises one expired token sweep.
type SweepReport struct {
	ExpiredDirect   int64
	ExpiredDownload int64
	ActiveDirect    int64
	ActiveDownload  int64
	DryRun          bool
}

// Site is the branding selected for a request host.
type Site struct {
	Key          string
	Name         string
	Domain       string
	Logo         string
	PrimaryColor string
}

// FileIDIssue flags a stored Telegram file id that cannot be sent by the bot.
type FileIDIssue struct {
	ItemID  uuid.UUID
	Slug    string
	Episode int // zero for the item itself
	Quality Quality
	FileID  string
	Problem string
}
