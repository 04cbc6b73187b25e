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
)

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns the repository as a domain.TokenRepository interface.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

func (repo *tokenRepository) CreateDownload(ctx context.Context, token *entity.DownloadToken) error {
	tokenM := &model.DownloadTokenModel{
		Token:     token.Token,
		ItemID:    token.ItemID,
		Quality:   string(token.Quality),
		FileID:    token.FileID,
		CreatedAt: token.CreatedAt,
		ExpiresAt: token.ExpiresAt,
	}
	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create download token")
	}

	return nil
}

func (repo *tokenRepository) FindDownload(ctx context.Context, token string) (*entity.DownloadToken, error) {
	var tokenM model.DownloadTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find download token")
	}

	return &entity.DownloadToken{
		Token:     tokenM.Token,
		ItemID:    tokenM.ItemID,
		Quality:   entity.Quality(tokenM.Quality),
		FileID:    tokenM.FileID,
		CreatedAt: tokenM.CreatedAt,
		ExpiresAt: tokenM.ExpiresAt,
	}, nil
}

func (repo *tokenRepository) DeleteDownload(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).Where("token = ?", token).Delete(&model.DownloadTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete download token")
	}

	return nil
}

func (repo *tokenRepository) CreateDirect(ctx context.Context, token *entity.DirectDownloadToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	tokenM := &model.DirectDownloadTokenModel{
		ID:             token.ID,
		Token:          token.Token,
		ItemID:         token.ItemID,
		Quality:        string(token.Quality),
		DestinationURL: token.DestinationURL,
		CreatedAt:      token.CreatedAt,
		ExpiresAt:      token.ExpiresAt,
		AccessCount:    token.AccessCount,
	}
	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create direct token")
	}

	return nil
}

func (repo *tokenRepository) FindDirect(ctx context.Context, token string) (*entity.DirectDownloadToken, error) {
	var tokenM model.DirectDownloadTokenModel
	if err := repo.db.WithContext(ctx).Where("token = ?", token).First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find direct token")
	}

	return toDirectTokenDomain(&tokenM), nil
}

func (repo *tokenRepository) DeleteDirect(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).Where("token = ?", token).Delete(&model.DirectDownloadTokenModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete direct token")
	}

	return nil
}

func (repo *tokenRepository) FindActiveDirect(ctx context.Context, itemID uuid.UUID, quality entity.Quality, now time.Time) (*entity.DirectDownloadToken, error) {
	var tokenM model.DirectDownloadTokenModel
	err := repo.db.WithContext(ctx).
		Where("item_id = ? AND quality = ? AND expires_at > ?", itemID, string(quality), now).
		Order("created_at DESC").
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active direct token")
	}

	return toDirectTokenDomain(&tokenM), nil
}

func (repo *tokenRepository) IncrementDirectAccess(ctx context.Context, token string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.DirectDownloadTokenModel{}).
		Where("token = ?", token).
		UpdateColumn("access_count", gorm.Expr("access_count + 1"))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment access count")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrTokenNotFound
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.DirectDownloadTokenModel{}).
		Where("token = ?", token).
		Pluck("access_count", &count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to read access count")
	}

	return count, nil
}

func (repo *tokenRepository) CountExpired(ctx context.Context, now time.Time) (direct, download int64, err error) {
	return repo.count(ctx, "expires_at < ?", now)
}

func (repo *tokenRepository) CountActive(ctx context.Context, now time.Time) (direct, download int64, err error) {
	return repo.count(ctx, "expires_at >= ?", now)
}

func (repo *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (direct, download int64, err error) {
	res := repo.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.DirectDownloadTokenModel{})
	if res.Error != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete expired direct tokens")
	}
	direct = res.RowsAffected

	res = repo.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.DownloadTokenModel{})
	if res.Error != nil {
		return direct, 0, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete expired download tokens")
	}

	return direct, res.RowsAffected, nil
}

func (repo *tokenRepository) count(ctx context.Context, cond string, now time.Time) (direct, download int64, err error) {
	if err = repo.db.WithContext(ctx).Model(&model.DirectDownloadTokenModel{}).Where(cond, now).Count(&direct).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count direct tokens")
	}
	if err = repo.db.WithContext(ctx).Model(&model.DownloadTokenModel{}).Where(cond, now).Count(&download).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count download tokens")
	}

	return direct, download, nil
}

func toDirectTokenDomain(data *model.DirectDownloadTokenModel) *entity.DirectDownloadToken {
	return &entity.DirectDownloadToken{
		ID:             data.ID,
		Token:          data.Token,
		ItemID:         data.ItemID,
		Quality:        entity.Quality(data.Quality),
		DestinationURL: data.DestinationURL,
		CreatedAt:      data.CreatedAt,
		ExpiresAt:      data.ExpiresAt,
		AccessCount:    data.AccessCount,
	}
}
