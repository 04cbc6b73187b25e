package postgres

import (
	"context"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository returns the repository as a domain.LibraryRepository interface.
func NewLibraryRepository(db *gorm.DB) repository.LibraryRepository {
	return &libraryRepository{db: db}
}

func (repo *libraryRepository) FindEntry(ctx context.Context, userID, itemID uuid.UUID) (*entity.LibraryEntry, error) {
	var entryM model.LibraryEntryModel
	if err := repo.db.WithContext(ctx).Where("user_id = ? AND item_id = ?", userID, itemID).First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLibraryEntryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find library entry")
	}

	return toLibraryEntryDomain(&entryM), nil
}

func (repo *libraryRepository) SaveEntry(ctx context.Context, entry *entity.LibraryEntry) error {
	entryM := &model.LibraryEntryModel{
		UserID:  entry.UserID,
		ItemID:  entry.ItemID,
		Status:  string(entry.Status),
		AddedAt: entry.AddedAt,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "added_at"}),
	}).Create(entryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save library entry")
	}

	return nil
}

func (repo *libraryRepository) DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&model.LibraryEntryModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete library entry")
	}

	return nil
}

func (repo *libraryRepository) ListEntries(ctx context.Context, userID uuid.UUID, status entity.LibraryStatus) ([]*entity.LibraryEntry, error) {
	var entriesM []model.LibraryEntryModel
	err := repo.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ? AND status = ?", userID, string(status)).
		Order("added_at DESC").
		Find(&entriesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list library entries")
	}

	entries := make([]*entity.LibraryEntry, 0, len(entriesM))
	for i := range entriesM {
		entries = append(entries, toLibraryEntryDomain(&entriesM[i]))
	}

	return entries, nil
}

func (repo *libraryRepository) RecordVisit(ctx context.Context, visit *entity.ItemVisit, keep int) error {
	visitM := &model.ItemVisitModel{
		UserID:    visit.UserID,
		ItemID:    visit.ItemID,
		VisitedAt: visit.VisitedAt,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"visited_at"}),
	}).Create(visitM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record visit")
	}

	err = repo.db.WithContext(ctx).Exec(
		`DELETE FROM item_visits WHERE user_id = ? AND item_id NOT IN (
			SELECT item_id FROM item_visits WHERE user_id = ? ORDER BY visited_at DESC LIMIT ?
		)`, visit.UserID, visit.UserID, keep).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to trim visits")
	}

	return nil
}

func (repo *libraryRepository) RecentVisits(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ItemVisit, error) {
	var visitsM []model.ItemVisitModel
	err := repo.db.WithContext(ctx).
		Preload("Item").
		Where("user_id = ?", userID).
		Order("visited_at DESC").
		Limit(limit).
		Find(&visitsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list visits")
	}

	visits := make([]*entity.ItemVisit, 0, len(visitsM))
	for i := range visitsM {
		v := &visitsM[i]
		visits = append(visits, &entity.ItemVisit{
			UserID:    v.UserID,
			ItemID:    v.ItemID,
			VisitedAt: v.VisitedAt,
			Item:      toCatalogueItemDomain(v.Item),
		})
	}

	return visits, nil
}

func (repo *libraryRepository) ListAvatars(ctx context.Context) ([]*entity.Avatar, error) {
	var avatarsM []model.AvatarModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&avatarsM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list avatars")
	}

	avatars := make([]*entity.Avatar, 0, len(avatarsM))
	for i := range avatarsM {
		avatars = append(avatars, toAvatarDomain(&avatarsM[i]))
	}

	return avatars, nil
}

func (repo *libraryRepository) FindAvatar(ctx context.Context, id int) (*entity.Avatar, error) {
	var avatarM model.AvatarModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&avatarM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAvatarNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find avatar")
	}

	return toAvatarDomain(&avatarM), nil
}

func (repo *libraryRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	if err := repo.db.WithContext(ctx).Preload("Avatar").Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find profile")
	}

	profile := &entity.UserProfile{
		UserID:    profileM.UserID,
		AvatarID:  profileM.AvatarID,
		UpdatedAt: profileM.UpdatedAt,
	}
	if profileM.Avatar != nil {
		profile.Avatar = toAvatarDomain(profileM.Avatar)
	}

	return profile, nil
}

func (repo *libraryRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := &model.UserProfileModel{
		UserID:    profile.UserID,
		AvatarID:  profile.AvatarID,
		UpdatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).Omit("Avatar").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"avatar_id", "updated_at"}),
	}).Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAvatarNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

func toLibraryEntryDomain(data *model.LibraryEntryModel) *entity.LibraryEntry {
	return &entity.LibraryEntry{
		UserID:  data.UserID,
		ItemID:  data.ItemID,
		Status:  entity.LibraryStatus(data.Status),
		AddedAt: data.AddedAt,
		Item:    toCatalogueItemDomain(data.Item),
	}
}

func toAvatarDomain(data *model.AvatarModel) *entity.Avatar {
	return &entity.Avatar{
		ID:       data.ID,
		Name:     data.Name,
		ImageURL: data.ImageURL,
	}
}
