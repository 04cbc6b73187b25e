package impl

import (
	"context"
	"testing"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	mockRepo "arthurflix/internal/mocks/repository"
	mockUsecase "arthurflix/internal/mocks/usecase"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type libraryFixture struct {
	userRepo      *mockRepo.MockUserRepository
	catalogueRepo *mockRepo.MockCatalogueRepository
	libraryRepo   *mockRepo.MockLibraryRepository
	membership    *mockUsecase.MockMembershipUsecase
	service       *libraryService
}

func newLibraryFixture(t *testing.T) *libraryFixture {
	f := &libraryFixture{
		userRepo:      mockRepo.NewMockUserRepository(t),
		catalogueRepo: mockRepo.NewMockCatalogueRepository(t),
		libraryRepo:   mockRepo.NewMockLibraryRepository(t),
		membership:    mockUsecase.NewMockMembershipUsecase(t),
	}

	f.service = NewLibraryService(LibraryServiceParams{
		UserRepo:      f.userRepo,
		CatalogueRepo: f.catalogueRepo,
		LibraryRepo:   f.libraryRepo,
		Membership:    f.membership,
		Logger:        discardLogger(),
	}).(*libraryService)
	f.service.now = fixedClock

	return f
}

func TestLibraryService_Toggle(t *testing.T) {
	userID, itemID := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		existing *entity.LibraryEntry
		status   entity.LibraryStatus
		want     usecase.ToggleAction
	}{
		{name: "add to watchlist", status: entity.LibraryWatchlist, want: usecase.ToggleAdded},
		{name: "same shelf removes", existing: &entity.LibraryEntry{Status: entity.LibraryWatchlist}, status: entity.LibraryWatchlist, want: usecase.ToggleRemoved},
		{name: "other shelf moves", existing: &entity.LibraryEntry{Status: entity.LibraryWatchlist}, status: entity.LibraryFinished, want: usecase.ToggleAdded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLibraryFixture(t)
			ctx := context.Background()

			f.catalogueRepo.EXPECT().FindByID(ctx, itemID).Return(&entity.CatalogueItem{ID: itemID}, nil)
			if tt.existing != nil {
				f.libraryRepo.EXPECT().FindEntry(ctx, userID, itemID).Return(tt.existing, nil)
			} else {
				f.libraryRepo.EXPECT().FindEntry(ctx, userID, itemID).Return(nil, repository.ErrLibraryEntryNotFound)
			}

			switch tt.want {
			case usecase.ToggleRemoved:
				f.libraryRepo.EXPECT().DeleteEntry(ctx, userID, itemID).Return(nil)
			case usecase.ToggleAdded:
				f.libraryRepo.EXPECT().
					SaveEntry(ctx, mock.MatchedBy(func(e *entity.LibraryEntry) bool {
						return e.UserID == userID && e.ItemID == itemID && e.Status == tt.status
					})).
					Return(nil)
			}

			got, err := f.service.Toggle(ctx, userID, itemID, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLibraryService_Toggle_Invalid(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newLibraryFixture(t)

		_, err := f.service.Toggle(context.Background(), uuid.New(), uuid.New(), "favourites")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidLibraryStatus)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newLibraryFixture(t)
		ctx := context.Background()
		itemID := uuid.New()
		f.catalogueRepo.EXPECT().FindByID(ctx, itemID).Return(nil, repository.ErrItemNotFound)

		_, err := f.service.Toggle(ctx, uuid.New(), itemID, entity.LibraryFinished)

		assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
	})
}

func TestLibraryService_Status_NotShelved(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()
	userID, itemID := uuid.New(), uuid.New()
	f.libraryRepo.EXPECT().FindEntry(ctx, userID, itemID).Return(nil, repository.ErrLibraryEntryNotFound)

	status, err := f.service.Status(ctx, userID, itemID)

	require.NoError(t, err)
	assert.Empty(t, status)
}

func TestLibraryService_Profile(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "moviefan"}
	watchlist := []*entity.LibraryEntry{{UserID: userID, Status: entity.LibraryWatchlist}}
	avatars := []*entity.Avatar{{ID: 1}, {ID: 2}}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.libraryRepo.EXPECT().FindProfile(ctx, userID).Return(&entity.UserProfile{UserID: userID}, nil)
	f.libraryRepo.EXPECT().ListEntries(ctx, userID, entity.LibraryWatchlist).Return(watchlist, nil)
	f.libraryRepo.EXPECT().ListEntries(ctx, userID, entity.LibraryFinished).Return(nil, nil)
	f.libraryRepo.EXPECT().RecentVisits(ctx, userID, defaultRecentVisits).Return(nil, nil)
	f.libraryRepo.EXPECT().ListAvatars(ctx).Return(avatars, nil)
	f.membership.EXPECT().Status(ctx, userID).Return(&entity.MembershipStatus{State: entity.MembershipNone}, nil)

	page, err := f.service.Profile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, page.User)
	assert.Equal(t, watchlist, page.Watchlist)
	assert.Len(t, page.Avatars, 2)
	assert.Equal(t, entity.MembershipNone, page.Membership.State)
}

func TestLibraryService_ChangeAvatar(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.libraryRepo.EXPECT().FindAvatar(ctx, 3).Return(&entity.Avatar{ID: 3, Name: "owl"}, nil)
	f.libraryRepo.EXPECT().
		SaveProfile(ctx, mock.MatchedBy(func(p *entity.UserProfile) bool {
			return p.UserID == userID && p.AvatarID != nil && *p.AvatarID == 3
		})).
		Return(nil)

	avatar, err := f.service.ChangeAvatar(ctx, userID, 3)

	require.NoError(t, err)
	assert.Equal(t, "owl", avatar.Name)
}

func TestLibraryService_ChangeAvatar_Unknown(t *testing.T) {
	f := newLibraryFixture(t)
	ctx := context.Background()
	f.libraryRepo.EXPECT().FindAvatar(ctx, 42).Return(nil, repository.ErrAvatarNotFound)

	_, err := f.service.ChangeAvatar(ctx, uuid.New(), 42)

	assert.ErrorIs(t, err, domainerrors.ErrAvatarNotFound)
}

func TestLibraryService_Avatars(t *testing.T) {
	f := newLibraryFixture(t)
	avatars := []*entity.Avatar{{ID: 1, Name: "Owl"}, {ID: 2, Name: "Fox"}}
	f.libraryRepo.EXPECT().ListAvatars(mock.Anything).Return(avatars, nil).Once()

	got, err := f.service.Avatars(context.Background())

	require.NoError(t, err)
	assert.Equal(t, avatars, got)
}
