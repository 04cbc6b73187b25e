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
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// libraryService implements the LibraryUsecase interface.
type libraryService struct {
	userRepo      repository.UserRepository
	catalogueRepo repository.CatalogueRepository
	libraryRepo   repository.LibraryRepository
	membership    usecase.MembershipUsecase
	recentVisits  int
	now           func() time.Time
	logger        *slog.Logger
}

// LibraryServiceParams holds dependencies for LibraryService, injected by Fx.
type LibraryServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	CatalogueRepo repository.CatalogueRepository
	LibraryRepo   repository.LibraryRepository
	Membership    usecase.MembershipUsecase
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLibraryService is the constructor for libraryService.
func NewLibraryService(params LibraryServiceParams) usecase.LibraryUsecase {
	recent := defaultRecentVisits
	if cfg := params.Config; cfg != nil && cfg.Catalogue != nil && cfg.Catalogue.RecentVisits > 0 {
		recent = cfg.Catalogue.RecentVisits
	}

	return &libraryService{
		userRepo:      params.UserRepo,
		catalogueRepo: params.CatalogueRepo,
		libraryRepo:   params.LibraryRepo,
		membership:    params.Membership,
		recentVisits:  recent,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *libraryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle shelves the item, moves it to another shelf, or removes it from its current shelf.
func (srv *libraryService) Toggle(ctx context.Context, userID, itemID uuid.UUID, status entity.LibraryStatus) (usecase.ToggleAction, error) {
	if !status.Valid() {
		return "", errors.WithStack(domainerrors.ErrInvalidLibraryStatus)
	}

	if _, err := srv.catalogueRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return "", errors.WithStack(domainerrors.ErrItemNotFound)
		}

		return "", errors.Wrap(err, "failed to find item")
	}

	entry, err := srv.libraryRepo.FindEntry(ctx, userID, itemID)
	switch {
	case errors.Is(err, repository.ErrLibraryEntryNotFound):
		entry = nil
	case err != nil:
		return "", errors.Wrap(err, "failed to find library entry")
	}

	if entry != nil && entry.Status == status {
		if err := srv.libraryRepo.DeleteEntry(ctx, userID, itemID); err != nil {
			return "", errors.Wrap(err, "failed to remove library entry")
		}
		srv.log(ctx).Debug("Library entry removed", slog.Any("item_id", itemID), slog.String("status", string(status)))

		return usecase.ToggleRemoved, nil
	}

	err = srv.libraryRepo.SaveEntry(ctx, &entity.LibraryEntry{
		UserID:  userID,
		ItemID:  itemID,
		Status:  status,
		AddedAt: srv.now(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to save library entry")
	}
	srv.log(ctx).Debug("Library entry saved", slog.Any("item_id", itemID), slog.String("status", string(status)))

	return usecase.ToggleAdded, nil
}

// Status returns the shelf holding itemID, empty when none does.
func (srv *libraryService) Status(ctx context.Context, userID, itemID uuid.UUID) (entity.LibraryStatus, error) {
	entry, err := srv.libraryRepo.FindEntry(ctx, userID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrLibraryEntryNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to find library entry")
	}

	return entry.Status, nil
}

// Profile gathers everything shown on the profile page.
func (srv *libraryService) Profile(ctx context.Context, userID uuid.UUID) (*usecase.ProfilePage, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	page := &usecase.ProfilePage{User: user}

	if page.Profile, err = srv.libraryRepo.FindProfile(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}
	if page.Watchlist, err = srv.libraryRepo.ListEntries(ctx, userID, entity.LibraryWatchlist); err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist")
	}
	if page.Finished, err = srv.libraryRepo.ListEntries(ctx, userID, entity.LibraryFinished); err != nil {
		return nil, errors.Wrap(err, "failed to list finished")
	}
	if page.Recent, err = srv.libraryRepo.RecentVisits(ctx, userID, srv.recentVisits); err != nil {
		return nil, errors.Wrap(err, "failed to list recent visits")
	}
	if page.Avatars, err = srv.libraryRepo.ListAvatars(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list avatars")
	}
	if page.Membership, err = srv.membership.Status(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to load membership")
	}

	return page, nil
}

// ChangeAvatar sets the user's avatar, creating the profile when missing.
func (srv *libraryService) ChangeAvatar(ctx context.Context, userID uuid.UUID, avatarID int) (*entity.Avatar, error) {
	avatar, err := srv.libraryRepo.FindAvatar(ctx, avatarID)
	if err != nil {
		if errors.Is(err, repository.ErrAvatarNotFound) {
			return nil, errors.WithStack(domainerrors.ErrAvatarNotFound)
		}

		return nil, errors.Wrap(err, "failed to find avatar")
	}

	if err := srv.libraryRepo.SaveProfile(ctx, &entity.UserProfile{UserID: userID, AvatarID: &avatar.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Info("Avatar changed", slog.Any("user_id", userID), slog.Int("avatar_id", avatar.ID))

	return avatar, nil
}

func (srv *libraryService) Avatars(ctx context.Context) ([]*entity.Avatar, error) {
	avatars, err := srv.libraryRepo.ListAvatars(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list avatars")
	}

	return avatars, nil
}
