package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/usecase"
	"arthurflix/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMembershipTermDays = 365
	defaultMembershipKeyLen   = 32
	maxProvisionBatch         = 10000
)

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager      repository.TransactionManager
	membershipRepo repository.MembershipKeyRepository
	term           time.Duration
	keyLength      int
	now            func() time.Time
	logger         *slog.Logger
}

// MembershipServiceParams holds dependencies for MembershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	MembershipRepo repository.MembershipKeyRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	termDays, keyLength := defaultMembershipTermDays, defaultMembershipKeyLen
	if cfg := params.Config; cfg != nil && cfg.Membership != nil {
		if cfg.Membership.TermDays > 0 {
			termDays = cfg.Membership.TermDays
		}
		if cfg.Membership.KeyLength > 0 {
			keyLength = cfg.Membership.KeyLength
		}
	}

	return &membershipService{
		txManager:      params.TxManager,
		membershipRepo: params.MembershipRepo,
		term:           time.Duration(termDays) * 24 * time.Hour,
		keyLength:      keyLength,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Status summarises the membership of userID.
func (srv *membershipService) Status(ctx context.Context, userID uuid.UUID) (*entity.MembershipStatus, error) {
	key, err := srv.membershipRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipKeyNotFound) {
			return &entity.MembershipStatus{State: entity.MembershipNone}, nil
		}

		return nil, errors.Wrap(err, "failed to find membership key")
	}

	status := &entity.MembershipStatus{Key: key.Key, ExpiresAt: key.ExpiresAt}
	switch {
	case !key.IsActive:
		status.State = entity.MembershipRevoked
	case key.IsValid(srv.now()):
		status.State = entity.MembershipActive
	default:
		status.State = entity.MembershipExpired
	}

	return status, nil
}

// Activate links an unassigned active key to the user, retiring the user's previous key.
func (srv *membershipService) Activate(ctx context.Context, userID uuid.UUID, key string, force bool) (*entity.MembershipKey, error) {
	key = strings.TrimSpace(key)
	if len(key) != srv.keyLength {
		return nil, domainerrors.ErrMembershipKeyInvalid.WithDetails("the key must be exactly the issued length")
	}

	var activated *entity.MembershipKey

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		membershipRepo := repoFactory.MembershipRepo()
		now := srv.now()

		// 1. A valid membership is only replaced on explicit renewal
		current, err := membershipRepo.FindByUserID(ctx, userID)
		if err != nil && !errors.Is(err, repository.ErrMembershipKeyNotFound) {
			return errors.Wrap(err, "failed to find current key")
		}
		if current.IsValid(now) && !force {
			return errors.WithStack(domainerrors.ErrMembershipAlreadyActive)
		}

		// 2. The new key must be unassigned and active
		next, err := membershipRepo.FindByKeyForUpdate(ctx, key)
		if err != nil {
			if errors.Is(err, repository.ErrMembershipKeyNotFound) {
				return errors.WithStack(domainerrors.ErrMembershipKeyInvalid)
			}

			return errors.Wrap(err, "failed to find key")
		}
		if next.IsAssigned() || !next.IsActive {
			return errors.WithStack(domainerrors.ErrMembershipKeyInvalid)
		}

		// 3. Retire the previous key before linking, a user holds at most one
		if current != nil {
			current.UserID = nil
			current.IsActive = false
			if err := membershipRepo.Update(ctx, current); err != nil {
				return errors.Wrap(err, "failed to retire previous key")
			}
		}

		expiresAt := now.Add(srv.term)
		next.UserID = &userID
		next.ExpiresAt = &expiresAt
		if err := membershipRepo.Update(ctx, next); err != nil {
			return errors.Wrap(err, "failed to link key")
		}
		activated = next

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Membership activation failed", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to activate membership")
	}

	srv.log(ctx).Info("Membership activated",
		slog.Any("user_id", userID),
		slog.Time("expires_at", *activated.ExpiresAt),
		slog.Bool("renewal", force),
	)

	return activated, nil
}

// ProvisionKeys creates count unassigned active keys.
func (srv *membershipService) ProvisionKeys(ctx context.Context, count int, notes string) ([]*entity.MembershipKey, error) {
	if count <= 0 || count > maxProvisionBatch {
		return nil, domainerrors.ErrValidationFailed.WithDetails("count must be between 1 and 10000")
	}

	now := srv.now()
	seen := make(map[string]struct{}, count)
	keys := make([]*entity.MembershipKey, 0, count)
	for len(keys) < count {
		value, err := util.RandomAlphanumeric(srv.keyLength)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate key")
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}

		keys = append(keys, &entity.MembershipKey{
			ID:        uuid.New(),
			Key:       value,
			IsActive:  true,
			Notes:     notes,
			CreatedAt: now,
		})
	}

	if err := srv.membershipRepo.CreateBatch(ctx, keys); err != nil {
		return nil, errors.Wrap(err, "failed to store keys")
	}

	srv.log(ctx).Info("Membership keys provisioned", slog.Int("count", len(keys)))

	return keys, nil
}
