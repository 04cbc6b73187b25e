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
	"arthurflix/internal/domain/service"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/usecase"
	"arthurflix/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDownloadTokenTTL = 30 * time.Minute
	defaultDirectTokenTTL   = 24 * time.Hour
	defaultDirectTokenLen   = 12
)

// tokenService implements the TokenUsecase interface.
//
// IssueOrReuseDirectToken reads then creates without a lock. Two concurrent first requests for the
// same (item, quality) can both create a token; both stay valid and later requests reuse the newest.
type tokenService struct {
	catalogueRepo repository.CatalogueRepository
	tokenRepo     repository.TokenRepository
	publisher     service.EventPublisher
	downloadTTL   time.Duration
	directTTL     time.Duration
	directLength  int
	now           func() time.Time
	logger        *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	CatalogueRepo repository.CatalogueRepository
	TokenRepo     repository.TokenRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	srv := &tokenService{
		catalogueRepo: params.CatalogueRepo,
		tokenRepo:     params.TokenRepo,
		publisher:     params.Publisher,
		downloadTTL:   defaultDownloadTokenTTL,
		directTTL:     defaultDirectTokenTTL,
		directLength:  defaultDirectTokenLen,
		now:           time.Now,
		logger:        params.Logger,
	}

	if cfg := params.Config; cfg != nil && cfg.Token != nil {
		if cfg.Token.DownloadTTL > 0 {
			srv.downloadTTL = cfg.Token.DownloadTTL
		}
		if cfg.Token.DirectTTL > 0 {
			srv.directTTL = cfg.Token.DirectTTL
		}
		if cfg.Token.DirectLength > 0 {
			srv.directLength = cfg.Token.DirectLength
		}
	}

	return srv
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueDownloadToken creates a download token for slug at quality.
func (srv *tokenService) IssueDownloadToken(ctx context.Context, slug, quality string) (*entity.DownloadToken, *entity.CatalogueItem, error) {
	item, err := srv.catalogueRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrItemNotFound, slug)
		}

		return nil, nil, errors.Wrap(err, "failed to find item")
	}

	q, ok := entity.ParseQuality(quality)
	if !ok || !item.DeliveryFor(q).Available() {
		srv.log(ctx).Warn("Download requested for unavailable quality",
			slog.String("slug", slug),
			slog.String("quality", quality),
		)

		return nil, nil, errors.WithStack(domainerrors.ErrQualityUnavailable)
	}

	now := srv.now()
	token := &entity.DownloadToken{
		Token:     uuid.NewString(),
		ItemID:    item.ID,
		Quality:   q,
		FileID:    item.DeliveryFor(q).FileID,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.downloadTTL),
	}

	if err := srv.tokenRepo.CreateDownload(ctx, token); err != nil {
		return nil, nil, errors.Wrap(err, "failed to create download token")
	}

	metrics.TokensIssued.WithLabelValues("download", "created").Inc()
	srv.log(ctx).Info("Download token created",
		slog.String("slug", slug),
		slog.String("quality", string(q)),
		slog.String("token", token.Token),
	)
	publishDownloadEvent(ctx, srv.publisher, srv.log(ctx), item.ID, q, entity.DownloadKindToken, token.Token)

	return token, item, nil
}

// IssueOrReuseDirectToken returns a live direct token for (item, quality), creating one if needed.
func (srv *tokenService) IssueOrReuseDirectToken(ctx context.Context, item *entity.CatalogueItem, quality entity.Quality) (*entity.DirectDownloadToken, error) {
	destination := item.DeliveryFor(quality).URL
	if destination == "" {
		return nil, nil
	}

	now := srv.now()
	existing, err := srv.tokenRepo.FindActiveDirect(ctx, item.ID, quality, now)
	switch {
	case err == nil:
		metrics.TokensIssued.WithLabelValues("direct", "reused").Inc()

		return existing, nil
	case !errors.Is(err, repository.ErrTokenNotFound):
		return nil, errors.Wrap(err, "failed to find direct token")
	}

	value, err := util.RandomAlphanumeric(srv.directLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate direct token")
	}

	token := &entity.DirectDownloadToken{
		Token:          value,
		ItemID:         item.ID,
		Quality:        quality,
		DestinationURL: destination,
		CreatedAt:      now,
		ExpiresAt:      now.Add(srv.directTTL),
	}
	if err := srv.tokenRepo.CreateDirect(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to create direct token")
	}

	metrics.TokensIssued.WithLabelValues("direct", "created").Inc()
	srv.log(ctx).Info("Direct token created",
		slog.String("slug", item.Slug),
		slog.String("quality", string(quality)),
		slog.String("token", token.Token),
	)

	return token, nil
}

// ValidateDownloadToken reports whether token is usable, deleting it when expired.
func (srv *tokenService) ValidateDownloadToken(ctx context.Context, token string) (entity.TokenValidation[entity.DownloadToken], error) {
	record, err := srv.tokenRepo.FindDownload(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			metrics.TokenValidations.WithLabelValues("download", entity.TokenNotFound.String()).Inc()

			return entity.UnknownToken[entity.DownloadToken](), nil
		}

		return entity.TokenValidation[entity.DownloadToken]{}, errors.Wrap(err, "failed to find download token")
	}

	if record.IsExpired(srv.now()) {
		if err := srv.tokenRepo.DeleteDownload(ctx, token); err != nil {
			srv.log(ctx).Error("Failed to delete expired download token", slog.String("token", token), slog.Any("error", err))
		}
		metrics.TokenValidations.WithLabelValues("download", entity.TokenExpired.String()).Inc()

		return entity.ExpiredToken[entity.DownloadToken](), nil
	}

	metrics.TokenValidations.WithLabelValues("download", entity.TokenValid.String()).Inc()

	return entity.ValidToken(record), nil
}

// RedeemDirectToken validates a direct token and adds one to its access counter.
func (srv *tokenService) RedeemDirectToken(ctx context.Context, token string) (entity.TokenValidation[entity.DirectDownloadToken], error) {
	record, err := srv.tokenRepo.FindDirect(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			metrics.TokenValidations.WithLabelValues("direct", entity.TokenNotFound.String()).Inc()

			return entity.UnknownToken[entity.DirectDownloadToken](), nil
		}

		return entity.TokenValidation[entity.DirectDownloadToken]{}, errors.Wrap(err, "failed to find direct token")
	}

	if record.IsExpired(srv.now()) {
		if err := srv.tokenRepo.DeleteDirect(ctx, token); err != nil {
			srv.log(ctx).Error("Failed to delete expired direct token", slog.String("token", token), slog.Any("error", err))
		}
		metrics.TokenValidations.WithLabelValues("direct", entity.TokenExpired.String()).Inc()

		return entity.ExpiredToken[entity.DirectDownloadToken](), nil
	}

	count, err := srv.tokenRepo.IncrementDirectAccess(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			// deleted by a concurrent sweep between the read and the update
			return entity.UnknownToken[entity.DirectDownloadToken](), nil
		}

		return entity.TokenValidation[entity.DirectDownloadToken]{}, errors.Wrap(err, "failed to count direct access")
	}
	record.AccessCount = count

	metrics.TokenValidations.WithLabelValues("direct", entity.TokenValid.String()).Inc()
	publishDownloadEvent(ctx, srv.publisher, srv.log(ctx), record.ItemID, record.Quality, entity.DownloadKindDirect, record.Token)

	return entity.ValidToken(record), nil
}
