package postgres

import (
	"context"
	"strings"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type catalogueRepository struct {
	db *gorm.DB
}

// NewCatalogueRepository returns the repository as a domain.CatalogueRepository interface.
func NewCatalogueRepository(db *gorm.DB) repository.CatalogueRepository {
	return &catalogueRepository{db: db}
}

func (repo *catalogueRepository) FindBySlug(ctx context.Context, slug string) (*entity.CatalogueItem, error) {
	var itemM model.CatalogueItemModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find item by slug")
	}

	return toCatalogueItemDomain(&itemM), nil
}

func (repo *catalogueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CatalogueItem, error) {
	var itemM model.CatalogueItemModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find item by id")
	}

	return toCatalogueItemDomain(&itemM), nil
}

func (repo *catalogueRepository) Count(ctx context.Context, filter entity.CatalogueFilter) (int64, error) {
	var total int64
	if err := repo.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count items")
	}

	return total, nil
}

func (repo *catalogueRepository) List(ctx context.Context, filter entity.CatalogueFilter, offset, limit int) ([]*entity.CatalogueItem, error) {
	var itemsM []model.CatalogueItemModel
	err := repo.filtered(ctx, filter).
		Order("upload_date DESC").
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&itemsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list items")
	}

	items := make([]*entity.CatalogueItem, 0, len(itemsM))
	for i := range itemsM {
		items = append(items, toCatalogueItemDomain(&itemsM[i]))
	}

	return items, nil
}

func (repo *catalogueRepository) Episodes(ctx context.Context, itemID uuid.UUID) ([]*entity.Episode, error) {
	var episodesM []model.EpisodeModel
	if err := repo.db.WithContext(ctx).Where("item_id = ?", itemID).Order("number").Find(&episodesM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list episodes")
	}

	return toEpisodesDomain(episodesM), nil
}

func (repo *catalogueRepository) WithFileIDs(ctx context.Context) ([]*entity.CatalogueItem, []*entity.Episode, error) {
	const cond = "sd_file_id <> '' OR hd_file_id <> ''"

	var itemsM []model.CatalogueItemModel
	if err := repo.db.WithContext(ctx).Where(cond).Order("slug").Find(&itemsM).Error; err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to list items with file ids")
	}

	var episodesM []model.EpisodeModel
	if err := repo.db.WithContext(ctx).Where(cond).Order("item_id").Order("number").Find(&episodesM).Error; err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to list episodes with file ids")
	}

	items := make([]*entity.CatalogueItem, 0, len(itemsM))
	for i := range itemsM {
		items = append(items, toCatalogueItemDomain(&itemsM[i]))
	}

	return items, toEpisodesDomain(episodesM), nil
}

func (repo *catalogueRepository) filtered(ctx context.Context, filter entity.CatalogueFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.CatalogueItemModel{})
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("title ILIKE ?", "%"+escapeLike(q)+"%")
	}

	return query
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toEpisodesDomain(data []model.EpisodeModel) []*entity.Episode {
	episodes := make([]*entity.Episode, 0, len(data))
	for i := range data {
		e := &data[i]
		episodes = append(episodes, &entity.Episode{
			ID:     e.ID,
			ItemID: e.ItemID,
			Number: e.Number,
			Title:  e.Title,
			SD:     entity.Delivery{FileID: e.SDFileID, URL: e.SDURL, StreamURL: e.SDStreamURL},
			HD:     entity.Delivery{FileID: e.HDFileID, URL: e.HDURL, StreamURL: e.HDStreamURL},
		})
	}

	return episodes
}

func toCatalogueItemDomain(data *model.CatalogueItemModel) *entity.CatalogueItem {
	if data == nil {
		return nil
	}

	return &entity.CatalogueItem{
		ID:          data.ID,
		Slug:        data.Slug,
		Title:       data.Title,
		Description: data.Description,
		Type:        entity.ItemType(data.Type),
		PosterURL:   data.PosterURL,
		UploadDate:  data.UploadDate,
		SD:          entity.Delivery{FileID: data.SDFileID, URL: data.SDURL, StreamURL: data.SDStreamURL},
		HD:          entity.Delivery{FileID: data.HDFileID, URL: data.HDURL, StreamURL: data.HDStreamURL},
	}
}
