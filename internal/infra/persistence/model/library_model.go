package model

import (
	"time"

	"github.com/google/uuid"
)

// AvatarModel mirrors the 'avatars' table of predefined pictures.
type AvatarModel struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);not null"`
	ImageURL string `gorm:"type:text;not null"`
}

func (AvatarModel) TableName() string {
	return "avatars"
}

// UserProfileModel mirrors the 'user_profiles' table.
type UserProfileModel struct {
	UserID    uuid.UUID    `gorm:"type:uuid;primaryKey"`
	AvatarID  *int         `gorm:"index"`
	Avatar    *AvatarModel `gorm:"foreignKey:AvatarID;constraint:OnDelete:SET NULL"`
	UpdatedAt time.Time
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// LibraryEntryModel mirrors the 'library_entries' table.
type LibraryEntryModel struct {
	UserID  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ItemID  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Status  string              `gorm:"type:varchar(20);not null;index"`
	AddedAt time.Time           `gorm:"not null"`
	Item    *CatalogueItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (LibraryEntryModel) TableName() string {
	return "library_entries"
}

// ItemVisitModel mirrors the 'item_visits' table.
type ItemVisitModel struct {
	UserID    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID           `gorm:"type:uuid;primaryKey"`
	VisitedAt time.Time           `gorm:"not null;index"`
	Item      *CatalogueItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

func (ItemVisitModel) TableName() string {
	return "item_visits"
}

// DownloadStatModel mirrors the 'download_stats' table.
type DownloadStatModel struct {
	ItemID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quality   string    `gorm:"type:varchar(4);primaryKey"`
	Kind      string    `gorm:"type:varchar(20);primaryKey"`
	Count     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (DownloadStatModel) TableName() string {
	return "download_stats"
}

// All lists every persisted model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&SessionModel{},
		&SessionTrackerModel{},
		&MembershipKeyModel{},
		&CatalogueItemModel{},
		&EpisodeModel{},
		&DownloadTokenModel{},
		&DirectDownloadTokenModel{},
		&AvatarModel{},
		&UserProfileModel{},
		&LibraryEntryModel{},
		&ItemVisitModel{},
		&DownloadStatModel{},
	}
}
