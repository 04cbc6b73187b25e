package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogueItemModel mirrors the 'catalogue_items' table.
type CatalogueItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	PosterURL   string    `gorm:"type:text"`
	UploadDate  time.Time `gorm:"not null;index"`
	SDFileID    string    `gorm:"column:sd_file_id;type:varchar(255)"`
	HDFileID    string    `gorm:"column:hd_file_id;type:varchar(255)"`
	SDURL       string    `gorm:"column:sd_url;type:text"`
	HDURL       string    `gorm:"column:hd_url;type:text"`
	SDStreamURL string    `gorm:"column:sd_stream_url;type:text"`
	HDStreamURL string    `gorm:"column:hd_stream_url;type:text"`

	Episodes []EpisodeModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (CatalogueItemModel) TableName() string {
	return "catalogue_items"
}

// EpisodeModel mirrors the 'episodes' table.
type EpisodeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_episode_item_number"`
	Number      int       `gorm:"not null;uniqueIndex:idx_episode_item_number"`
	Title       string    `gorm:"type:varchar(255)"`
	SDFileID    string    `gorm:"column:sd_file_id;type:varchar(255)"`
	HDFileID    string    `gorm:"column:hd_file_id;type:varchar(255)"`
	SDURL       string    `gorm:"column:sd_url;type:text"`
	HDURL       string    `gorm:"column:hd_url;type:text"`
	SDStreamURL string    `gorm:"column:sd_stream_url;type:text"`
	HDStreamURL string    `gorm:"column:hd_stream_url;type:text"`
}

func (EpisodeModel) TableName() string {
	return "episodes"
}
