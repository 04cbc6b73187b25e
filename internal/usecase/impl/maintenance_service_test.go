package impl

import (
	"context"
	"strings"
	"testing"

	"arthurflix/internal/domain/entity"
	mockRepo "arthurflix/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceFixture struct {
	tokenRepo     *mockRepo.MockTokenRepository
	userRepo      *mockRepo.MockUserRepository
	libraryRepo   *mockRepo.MockLibraryRepository
	catalogueRepo *mockRepo.MockCatalogueRepository
	service       *maintenanceService
}

func newMaintenanceFixture(t *testing.T) *maintenanceFixture {
	f := &maintenanceFixture{
		tokenRepo:     mockRepo.NewMockTokenRepository(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		libraryRepo:   mockRepo.NewMockLibraryRepository(t),
		catalogueRepo: mockRepo.NewMockCatalogueRepository(t),
	}

	f.service = NewMaintenanceService(MaintenanceServiceParams{
		TokenRepo:     f.tokenRepo,
		UserRepo:      f.userRepo,
		LibraryRepo:   f.libraryRepo,
		CatalogueRepo: f.catalogueRepo,
		Logger:        discardLogger(),
	}).(*maintenanceService)
	f.service.now = fixedClock

	return f
}

func TestMaintenanceService_SweepExpiredTokens(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	f.tokenRepo.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(3), int64(7), nil)
	f.tokenRepo.EXPECT().CountActive(ctx, fixedNow).Return(int64(2), int64(5), nil)

	report, err := f.service.SweepExpiredTokens(ctx, false)

	require.NoError(t, err)
	assert.Equal(t, &entity.SweepReport{
		ExpiredDirect:   3,
		ExpiredDownload: 7,
		ActiveDirect:    2,
		ActiveDownload:  5,
	}, report)
}

func TestMaintenanceService_SweepExpiredTokens_DryRun(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	f.tokenRepo.EXPECT().CountExpired(ctx, fixedNow).Return(int64(1), int64(4), nil)
	f.tokenRepo.EXPECT().CountActive(ctx, fixedNow).Return(int64(0), int64(0), nil)

	report, err := f.service.SweepExpiredTokens(ctx, true)

	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, int64(4), report.ExpiredDownload)
	f.tokenRepo.AssertNotCalled(t, "DeleteExpired", mock.Anything, mock.Anything)
}

func TestMaintenanceService_SweepExpiredTokens_DeleteFails(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	f.tokenRepo.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(0), int64(0), errors.New("lock timeout"))

	_, err := f.service.SweepExpiredTokens(ctx, false)

	assert.Error(t, err)
}

func TestMaintenanceService_CreateMissingProfiles(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	f.userRepo.EXPECT().ListIDsWithoutProfile(ctx).Return(ids, nil)
	f.libraryRepo.EXPECT().
		SaveProfile(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool { return p.AvatarID == nil })).
		Return(nil).Times(2)

	created, err := f.service.CreateMissingProfiles(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, created)
}

func TestMaintenanceService_AuditFileIDs(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()
	good := "BQACAgIAAxkBAAIBY2ZxLongEnoughFileIdValue"
	item := &entity.CatalogueItem{
		ID:   uuid.New(),
		Slug: "beta",
		SD:   entity.Delivery{FileID: "https://t.me/c/123/45"},
		HD:   entity.Delivery{FileID: good},
	}
	episode := &entity.Episode{ItemID: item.ID, Number: 4, HD: entity.Delivery{FileID: "short"}}

	f.catalogueRepo.EXPECT().WithFileIDs(ctx).Return([]*entity.CatalogueItem{item}, []*entity.Episode{episode}, nil)

	issues, err := f.service.AuditFileIDs(ctx)

	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, entity.QualitySD, issues[0].Quality)
	assert.Equal(t, "looks like a URL", issues[0].Problem)
	assert.Equal(t, "beta", issues[1].Slug)
	assert.Equal(t, 4, issues[1].Episode)
	assert.Equal(t, "too short", issues[1].Problem)
}

func TestFileIDProblem(t *testing.T) {
	assert.Empty(t, fileIDProblem(""))
	assert.Empty(t, fileIDProblem(strings.Repeat("A", minTelegramFileIDLength)))
	assert.Equal(t, "too short", fileIDProblem(strings.Repeat("A", minTelegramFileIDLength-1)))
	assert.Equal(t, "looks like a URL", fileIDProblem("HTTP://example.com/"+strings.Repeat("a", 40)))
}
