package postgres

import (
	"context"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const membershipKeyBatchSize = 500

type membershipKeyRepository struct {
	db *gorm.DB
}

// NewMembershipKeyRepository returns the repository as a domain.MembershipKeyRepository interface.
func NewMembershipKeyRepository(db *gorm.DB) repository.MembershipKeyRepository {
	return &membershipKeyRepository{db: db}
}

func (repo *membershipKeyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MembershipKey, error) {
	var keyM model.MembershipKeyModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipKeyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find membership key by user")
	}

	return toMembershipKeyDomain(&keyM), nil
}

func (repo *membershipKeyRepository) FindByKeyForUpdate(ctx context.Context, key string) (*entity.MembershipKey, error) {
	var keyM model.MembershipKeyModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("key = ?", key).
		First(&keyM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipKeyNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock membership key")
	}

	return toMembershipKeyDomain(&keyM), nil
}

func (repo *membershipKeyRepository) Update(ctx context.Context, key *entity.MembershipKey) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MembershipKeyModel{}).
		Where("id = ?", key.ID).
		Updates(map[string]any{
			"user_id":    key.UserID,
			"is_active":  key.IsActive,
			"expires_at": key.ExpiresAt,
			"notes":      key.Notes,
		}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMembershipKeyInvalid.WrapMessage("user already linked to another key")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update membership key")
	}

	return nil
}

func (repo *membershipKeyRepository) CreateBatch(ctx context.Context, keys []*entity.MembershipKey) error {
	if len(keys) == 0 {
		return nil
	}

	models := make([]*model.MembershipKeyModel, 0, len(keys))
	for _, k := range keys {
		if k.ID == uuid.Nil {
			k.ID = uuid.New()
		}
		models = append(models, &model.MembershipKeyModel{
			ID:        k.ID,
			Key:       k.Key,
			UserID:    k.UserID,
			IsActive:  k.IsActive,
			ExpiresAt: k.ExpiresAt,
			Notes:     k.Notes,
		})
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, membershipKeyBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership keys")
	}

	return nil
}

func toMembershipKeyDomain(data *model.MembershipKeyModel) *entity.MembershipKey {
	return &entity.MembershipKey{
		ID:        data.ID,
		Key:       data.Key,
		UserID:    data.UserID,
		IsActive:  data.IsActive,
		ExpiresAt: data.ExpiresAt,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}
