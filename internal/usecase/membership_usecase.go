package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipUsecase manages membership keys.
type MembershipUsecase interface {
	Status(ctx context.Context, userID uuid.UUID) (*entity.MembershipStatus, error)

	// Activate links key to the user for one membership term.
	// A user with a valid key needs force to replace it.
	Activate(ctx context.Context, userID uuid.UUID, key string, force bool) (*entity.MembershipKey, error)

	// ProvisionKeys creates count unassigned keys.
	ProvisionKeys(ctx context.Context, count int, notes string) ([]*entity.MembershipKey, error)
}
