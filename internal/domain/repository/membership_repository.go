package repository

import (
	"context"
	"errors"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMembershipKeyNotFound is returned when a key does not exist.
var ErrMembershipKeyNotFound = errors.New("membership key not found")

// MembershipKeyRepository persists membership keys.
type MembershipKeyRepository interface {
	// FindByUserID returns the key linked to a user, or ErrMembershipKeyNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.MembershipKey, error)

	// FindByKeyForUpdate loads a key and locks its row until the transaction ends.
	FindByKeyForUpdate(ctx context.Context, key string) (*entity.MembershipKey, error)

	Update(ctx context.Context, key *entity.MembershipKey) error
	CreateBatch(ctx context.Context, keys []*entity.MembershipKey) error
}
