package postgres

import (
	"context"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type downloadStatRepository struct {
	db *gorm.DB
}

// NewDownloadStatRepository returns the repository as a domain.DownloadStatRepository interface.
func NewDownloadStatRepository(db *gorm.DB) repository.DownloadStatRepository {
	return &downloadStatRepository{db: db}
}

func (repo *downloadStatRepository) Increment(ctx context.Context, stat *entity.DownloadStat) error {
	var exists int64
	err := repo.db.WithContext(ctx).
		Model(&model.CatalogueItemModel{}).
		Where("id = ?", stat.ItemID).
		Count(&exists).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to check item")
	}
	if exists == 0 {
		return repository.ErrItemNotFound
	}

	statM := &model.DownloadStatModel{
		ItemID:    stat.ItemID,
		Quality:   string(stat.Quality),
		Kind:      string(stat.Kind),
		Count:     1,
		UpdatedAt: time.Now(),
	}

	err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_id"}, {Name: "quality"}, {Name: "kind"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":      gorm.Expr("download_stats.count + 1"),
			"updated_at": statM.UpdatedAt,
		}),
	}).Create(statM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment download stat")
	}

	return nil
}
