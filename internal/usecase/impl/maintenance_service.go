package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Telegram file ids are long opaque strings. Anything shorter, or anything that is a URL, was pasted wrong.
const minTelegramFileIDLength = 30

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	tokenRepo     repository.TokenRepository
	userRepo      repository.UserRepository
	libraryRepo   repository.LibraryRepository
	catalogueRepo repository.CatalogueRepository
	now           func() time.Time
	logger        *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TokenRepo     repository.TokenRepository
	UserRepo      repository.UserRepository
	LibraryRepo   repository.LibraryRepository
	CatalogueRepo repository.CatalogueRepository
	Logger        *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		tokenRepo:     params.TokenRepo,
		userRepo:      params.UserRepo,
		libraryRepo:   params.LibraryRepo,
		catalogueRepo: params.CatalogueRepo,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepExpiredTokens removes expired download and direct tokens.
func (srv *maintenanceService) SweepExpiredTokens(ctx context.Context, dryRun bool) (*entity.SweepReport, error) {
	now := srv.now()
	report := &entity.SweepReport{DryRun: dryRun}

	var err error
	if dryRun {
		report.ExpiredDirect, report.ExpiredDownload, err = srv.tokenRepo.CountExpired(ctx, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count expired tokens")
		}
	} else {
		report.ExpiredDirect, report.ExpiredDownload, err = srv.tokenRepo.DeleteExpired(ctx, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to delete expired tokens")
		}
		metrics.TokensSwept.WithLabelValues("direct").Add(float64(report.ExpiredDirect))
		metrics.TokensSwept.WithLabelValues("download").Add(float64(report.ExpiredDownload))
	}

	report.ActiveDirect, report.ActiveDownload, err = srv.tokenRepo.CountActive(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active tokens")
	}

	srv.log(ctx).Info("Expired token sweep finished",
		slog.Bool("dry_run", dryRun),
		slog.Int64("expired_direct", report.ExpiredDirect),
		slog.Int64("expired_download", report.ExpiredDownload),
		slog.Int64("active_direct", report.ActiveDirect),
		slog.Int64("active_download", report.ActiveDownload),
	)

	return report, nil
}

// CreateMissingProfiles gives every user without a profile an empty one.
func (srv *maintenanceService) CreateMissingProfiles(ctx context.Context) (int, error) {
	ids, err := srv.userRepo.ListIDsWithoutProfile(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list users without profile")
	}

	created := 0
	for _, id := range ids {
		if err := srv.libraryRepo.SaveProfile(ctx, &entity.UserProfile{UserID: id}); err != nil {
			return created, errors.Wrapf(err, "failed to create profile for %s", id)
		}
		created++
	}

	srv.log(ctx).Info("Missing profiles created", slog.Int("count", created))

	return created, nil
}

// AuditFileIDs lists stored file ids that the bot will not be able to send.
func (srv *maintenanceService) AuditFileIDs(ctx context.Context) ([]entity.FileIDIssue, error) {
	items, episodes, err := srv.catalogueRepo.WithFileIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load file ids")
	}

	slugs := make(map[string]string, len(items))
	var issues []entity.FileIDIssue

	for _, item := range items {
		slugs[item.ID.String()] = item.Slug
		for _, q := range []entity.Quality{entity.QualitySD, entity.QualityHD} {
			if problem := fileIDProblem(item.DeliveryFor(q).FileID); problem != "" {
				issues = append(issues, entity.FileIDIssue{
					ItemID:  item.ID,
					Slug:    item.Slug,
					Quality: q,
					FileID:  item.DeliveryFor(q).FileID,
					Problem: problem,
				})
			}
		}
	}

	for _, episode := range episodes {
		for _, q := range []entity.Quality{entity.QualitySD, entity.QualityHD} {
			if problem := fileIDProblem(episode.DeliveryFor(q).FileID); problem != "" {
				issues = append(issues, entity.FileIDIssue{
					ItemID:  episode.ItemID,
					Slug:    slugs[episode.ItemID.String()],
					Episode: episode.Number,
					Quality: q,
					FileID:  episode.DeliveryFor(q).FileID,
					Problem: problem,
				})
			}
		}
	}

	srv.log(ctx).Info("File id audit finished", slog.Int("issues", len(issues)))

	return issues, nil
}

func fileIDProblem(fileID string) string {
	switch {
	case fileID == "":
		return ""
	case strings.HasPrefix(strings.ToLower(fileID), "http"):
		return "looks like a URL"
	case len(fileID) < minTelegramFileIDLength:
		return "too short"
	default:
		return ""
	}
}
