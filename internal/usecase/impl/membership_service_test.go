package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	mockRepo "arthurflix/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type membershipFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	membershipRepo *mockRepo.MockMembershipKeyRepository
	service        *membershipService
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	f := &membershipFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		membershipRepo: mockRepo.NewMockMembershipKeyRepository(t),
	}

	srv := NewMembershipService(MembershipServiceParams{
		TxManager:      f.txManager,
		MembershipRepo: f.membershipRepo,
		Logger:         discardLogger(),
	})
	f.service = srv.(*membershipService)
	f.service.now = fixedClock

	return f
}

var sampleKey = strings.Repeat("K", defaultMembershipKeyLen)

func TestMembershipService_Status(t *testing.T) {
	userID := uuid.New()
	future := fixedNow.Add(time.Hour)
	past := fixedNow.Add(-time.Hour)

	tests := []struct {
		name    string
		key     *entity.MembershipKey
		repoErr error
		want    entity.MembershipState
	}{
		{name: "none", repoErr: repository.ErrMembershipKeyNotFound, want: entity.MembershipNone},
		{name: "active", key: &entity.MembershipKey{UserID: &userID, IsActive: true, ExpiresAt: &future}, want: entity.MembershipActive},
		{name: "expired", key: &entity.MembershipKey{UserID: &userID, IsActive: true, ExpiresAt: &past}, want: entity.MembershipExpired},
		{name: "revoked", key: &entity.MembershipKey{UserID: &userID, IsActive: false, ExpiresAt: &future}, want: entity.MembershipRevoked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMembershipFixture(t)
			ctx := context.Background()
			f.membershipRepo.EXPECT().FindByUserID(ctx, userID).Return(tt.key, tt.repoErr)

			status, err := f.service.Status(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, status.State)
		})
	}
}

func TestMembershipService_Activate_FirstKey(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	fresh := &entity.MembershipKey{ID: uuid.New(), Key: sampleKey, IsActive: true}

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().MembershipRepo().Return(f.membershipRepo)
	f.membershipRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrMembershipKeyNotFound)
	f.membershipRepo.EXPECT().FindByKeyForUpdate(ctx, sampleKey).Return(fresh, nil)
	f.membershipRepo.EXPECT().Update(ctx, fresh).Return(nil)

	key, err := f.service.Activate(ctx, userID, " "+sampleKey+" ", false)

	require.NoError(t, err)
	require.NotNil(t, key.UserID)
	assert.Equal(t, userID, *key.UserID)
	assert.Equal(t, fixedNow.Add(365*24*time.Hour), *key.ExpiresAt)
	assert.True(t, key.IsValid(fixedNow))
}

func TestMembershipService_Activate_RenewRetiresExpiredKey(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	yesterday := fixedNow.Add(-24 * time.Hour)
	old := &entity.MembershipKey{ID: uuid.New(), Key: "old", UserID: &userID, IsActive: true, ExpiresAt: &yesterday}
	fresh := &entity.MembershipKey{ID: uuid.New(), Key: sampleKey, IsActive: true}

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().MembershipRepo().Return(f.membershipRepo)
	f.membershipRepo.EXPECT().FindByUserID(ctx, userID).Return(old, nil)
	f.membershipRepo.EXPECT().FindByKeyForUpdate(ctx, sampleKey).Return(fresh, nil)
	f.membershipRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(k *entity.MembershipKey) bool { return k.ID == old.ID })).
		Run(func(_ context.Context, k *entity.MembershipKey) {
			assert.Nil(t, k.UserID)
			assert.False(t, k.IsActive)
		}).
		Return(nil).Once()
	f.membershipRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(k *entity.MembershipKey) bool { return k.ID == fresh.ID })).
		Return(nil).Once()

	key, err := f.service.Activate(ctx, userID, sampleKey, false)

	require.NoError(t, err)
	assert.Equal(t, fresh.ID, key.ID)
}

func TestMembershipService_Activate_AlreadyActive(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	future := fixedNow.Add(time.Hour)

	expectTx(f.txManager, f.factory)
	f.factory.EXPECT().MembershipRepo().Return(f.membershipRepo)
	f.membershipRepo.EXPECT().FindByUserID(ctx, userID).
		Return(&entity.MembershipKey{UserID: &userID, IsActive: true, ExpiresAt: &future}, nil)

	_, err := f.service.Activate(ctx, userID, sampleKey, false)

	assert.ErrorIs(t, err, domainerrors.ErrMembershipAlreadyActive)
}

func TestMembershipService_Activate_InvalidKey(t *testing.T) {
	other := uuid.New()

	tests := []struct {
		name    string
		key     *entity.MembershipKey
		repoErr error
	}{
		{name: "unknown", repoErr: repository.ErrMembershipKeyNotFound},
		{name: "assigned to someone else", key: &entity.MembershipKey{Key: sampleKey, UserID: &other, IsActive: true}},
		{name: "deactivated", key: &entity.MembershipKey{Key: sampleKey, IsActive: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMembershipFixture(t)
			ctx := context.Background()
			userID := uuid.New()

			expectTx(f.txManager, f.factory)
			f.factory.EXPECT().MembershipRepo().Return(f.membershipRepo)
			f.membershipRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrMembershipKeyNotFound)
			f.membershipRepo.EXPECT().FindByKeyForUpdate(ctx, sampleKey).Return(tt.key, tt.repoErr)

			_, err := f.service.Activate(ctx, userID, sampleKey, false)

			assert.ErrorIs(t, err, domainerrors.ErrMembershipKeyInvalid)
		})
	}
}

func TestMembershipService_Activate_WrongLength(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.service.Activate(context.Background(), uuid.New(), "short", false)

	assert.ErrorIs(t, err, domainerrors.ErrMembershipKeyInvalid)
}

func TestMembershipService_ProvisionKeys(t *testing.T) {
	f := newMembershipFixture(t)
	ctx := context.Background()

	f.membershipRepo.EXPECT().
		CreateBatch(ctx, mock.MatchedBy(func(keys []*entity.MembershipKey) bool { return len(keys) == 25 })).
		Return(nil)

	keys, err := f.service.ProvisionKeys(ctx, 25, "spring promo")

	require.NoError(t, err)
	seen := map[string]bool{}
	for _, k := range keys {
		assert.Len(t, k.Key, defaultMembershipKeyLen)
		assert.True(t, k.IsActive)
		assert.Nil(t, k.UserID)
		assert.Equal(t, "spring promo", k.Notes)
		assert.False(t, seen[k.Key])
		seen[k.Key] = true
	}
}

func TestMembershipService_ProvisionKeys_InvalidCount(t *testing.T) {
	f := newMembershipFixture(t)

	for _, count := range []int{0, -1, maxProvisionBatch + 1} {
		_, err := f.service.ProvisionKeys(context.Background(), count, "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}
