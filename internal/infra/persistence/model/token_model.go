package model

import (
	"time"

	"github.com/google/uuid"
)

// DownloadTokenModel mirrors the 'download_tokens' table.
type DownloadTokenModel struct {
	Token     string    `gorm:"type:varchar(64);primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null"`
	Quality   string    `gorm:"type:varchar(4);not null"`
	FileID    string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (DownloadTokenModel) TableName() string {
	return "download_tokens"
}

// DirectDownloadTokenModel mirrors the 'direct_download_tokens' table.
// There is deliberately no unique index on (item_id, quality): concurrent first visits may both insert.
type DirectDownloadTokenModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token          string    `gorm:"type:varchar(12);uniqueIndex;not null"`
	ItemID         uuid.UUID `gorm:"type:uuid;not null;index:idx_direct_item_quality"`
	Quality        string    `gorm:"type:varchar(4);not null;index:idx_direct_item_quality"`
	DestinationURL string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null"`
	ExpiresAt      time.Time `gorm:"not null;index"`
	AccessCount    int64     `gorm:"not null;default:0"`
}

func (DirectDownloadTokenModel) TableName() string {
	return "direct_download_tokens"
}
