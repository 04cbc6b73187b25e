package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"
)

// TokenUsecase issues and validates download tokens.
type TokenUsecase interface {
	// IssueDownloadToken creates a short lived token for one quality of the item behind slug.
	// Returns domainerrors.ErrQualityUnavailable when that quality has no file id and no direct URL.
	IssueDownloadToken(ctx context.Context, slug, quality string) (*entity.DownloadToken, *entity.CatalogueItem, error)

	// IssueOrReuseDirectToken returns the newest unexpired direct token for (item, quality) or creates one.
	// Returns nil, nil when the quality has no direct URL.
	IssueOrReuseDirectToken(ctx context.Context, item *entity.CatalogueItem, quality entity.Quality) (*entity.DirectDownloadToken, error)

	// ValidateDownloadToken looks a token up. Expired tokens are deleted and reported as expired.
	ValidateDownloadToken(ctx context.Context, token string) (entity.TokenValidation[entity.DownloadToken], error)

	// RedeemDirectToken validates a direct token and counts one access when it is valid.
	RedeemDirectToken(ctx context.Context, token string) (entity.TokenValidation[entity.DirectDownloadToken], error)
}
