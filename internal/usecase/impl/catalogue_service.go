package impl

import (
	"context"
	"log/slog"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize     = 12
	defaultRecentVisits = 3
)

// catalogueService implements the CatalogueUsecase interface.
type catalogueService struct {
	catalogueRepo repository.CatalogueRepository
	libraryRepo   repository.LibraryRepository
	pageSize      int
	recentVisits  int
	now           func() time.Time
	logger        *slog.Logger
}

// CatalogueServiceParams holds dependencies for CatalogueService, injected by Fx.
type CatalogueServiceParams struct {
	fx.In

	CatalogueRepo repository.CatalogueRepository
	LibraryRepo   repository.LibraryRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogueService is the constructor for catalogueService.
func NewCatalogueService(params CatalogueServiceParams) usecase.CatalogueUsecase {
	pageSize, recent := defaultPageSize, defaultRecentVisits
	if cfg := params.Config; cfg != nil && cfg.Catalogue != nil {
		if cfg.Catalogue.PageSize > 0 {
			pageSize = cfg.Catalogue.PageSize
		}
		if cfg.Catalogue.RecentVisits > 0 {
			recent = cfg.Catalogue.RecentVisits
		}
	}

	return &catalogueService{
		catalogueRepo: params.CatalogueRepo,
		libraryRepo:   params.LibraryRepo,
		pageSize:      pageSize,
		recentVisits:  recent,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *catalogueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List pages through the whole catalogue.
func (srv *catalogueService) List(ctx context.Context, query string, page int) (*entity.Page[*entity.CatalogueItem], error) {
	return srv.list(ctx, entity.CatalogueFilter{Query: query}, page)
}

// ListByCategory pages through the items of one type.
func (srv *catalogueService) ListByCategory(ctx context.Context, category entity.ItemType, query string, page int) (*entity.Page[*entity.CatalogueItem], error) {
	return srv.list(ctx, entity.CatalogueFilter{Type: category, Query: query}, page)
}

func (srv *catalogueService) list(ctx context.Context, filter entity.CatalogueFilter, page int) (*entity.Page[*entity.CatalogueItem], error) {
	total, err := srv.catalogueRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count items")
	}

	result := &entity.Page[*entity.CatalogueItem]{Size: srv.pageSize, TotalItems: total}
	result.Number = clampPage(page, result.TotalPages())

	if total == 0 {
		result.Items = []*entity.CatalogueItem{}

		return result, nil
	}

	items, err := srv.catalogueRepo.List(ctx, filter, (result.Number-1)*srv.pageSize, srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	result.Items = items

	return result, nil
}

// clampPage maps page into [1, last].
func clampPage(page, last int) int {
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}

	return page
}

// Detail loads slug with its episodes and records the visit of viewer.
func (srv *catalogueService) Detail(ctx context.Context, slug string, viewer *uuid.UUID) (*usecase.ItemDetail, error) {
	detail, err := srv.load(ctx, slug)
	if err != nil {
		return nil, err
	}

	if viewer != nil {
		visit := &entity.ItemVisit{UserID: *viewer, ItemID: detail.Item.ID, VisitedAt: srv.now()}
		if err := srv.libraryRepo.RecordVisit(ctx, visit, srv.recentVisits); err != nil {
			srv.log(ctx).Warn("Failed to record visit", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	return detail, nil
}

// Episodes loads slug with its episodes.
func (srv *catalogueService) Episodes(ctx context.Context, slug string) (*usecase.ItemDetail, error) {
	return srv.load(ctx, slug)
}

func (srv *catalogueService) load(ctx context.Context, slug string) (*usecase.ItemDetail, error) {
	item, err := srv.findItem(ctx, slug)
	if err != nil {
		return nil, err
	}

	episodes, err := srv.catalogueRepo.Episodes(ctx, item.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list episodes")
	}

	return &usecase.ItemDetail{
		Item:        item,
		Episodes:    episodes,
		SDAvailable: item.SD.Available(),
		HDAvailable: item.HD.Available(),
	}, nil
}

func (srv *catalogueService) findItem(ctx context.Context, slug string) (*entity.CatalogueItem, error) {
	item, err := srv.catalogueRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, slug)
		}

		return nil, errors.Wrap(err, "failed to find item")
	}

	return item, nil
}

// StreamURL resolves where to stream slug, or its episode when episode > 0.
func (srv *catalogueService) StreamURL(ctx context.Context, slug, quality string, episode int) (string, error) {
	q, ok := entity.ParseQuality(quality)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrStreamUnavailable)
	}

	item, err := srv.findItem(ctx, slug)
	if err != nil {
		return "", err
	}

	delivery := item.DeliveryFor(q)
	if episode > 0 {
		episodes, err := srv.catalogueRepo.Episodes(ctx, item.ID)
		if err != nil {
			return "", errors.Wrap(err, "failed to list episodes")
		}

		var found *entity.Episode
		for _, e := range episodes {
			if e.Number == episode {
				found = e

				break
			}
		}
		if found == nil {
			return "", errors.WithStack(domainerrors.ErrEpisodeNotFound)
		}
		delivery = found.DeliveryFor(q)
	}

	if delivery.StreamURL == "" {
		return "", errors.WithStack(domainerrors.ErrStreamUnavailable)
	}

	return delivery.StreamURL, nil
}
