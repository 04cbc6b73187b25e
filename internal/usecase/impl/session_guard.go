package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionGuard implements the SessionGuard interface.
type sessionGuard struct {
	txManager   repository.TransactionManager
	trackerRepo repository.SessionTrackerRepository
	now         func() time.Time
	logger      *slog.Logger
}

// SessionGuardParams holds dependencies for SessionGuard, injected by Fx.
type SessionGuardParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TrackerRepo repository.SessionTrackerRepository
	Logger      *slog.Logger
}

// NewSessionGuard is the constructor for sessionGuard.
func NewSessionGuard(params SessionGuardParams) usecase.SessionGuard {
	return &sessionGuard{
		txManager:   params.TxManager,
		trackerRepo: params.TrackerRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *sessionGuard) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OnLogin records sessionID as the user's only session and deletes the previous one.
func (srv *sessionGuard) OnLogin(ctx context.Context, userID, sessionID uuid.UUID) error {
	var displaced *uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		trackerRepo := repoFactory.TrackerRepo()

		tracker, err := trackerRepo.FindByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find session tracker")
		}

		if tracker != nil && tracker.SessionID != nil && *tracker.SessionID != sessionID {
			if err := repoFactory.SessionRepo().Delete(ctx, *tracker.SessionID); err != nil {
				return errors.Wrap(err, "failed to delete previous session")
			}
			displaced = tracker.SessionID
		}

		return trackerRepo.Upsert(ctx, &entity.SessionTracker{
			UserID:    userID,
			SessionID: &sessionID,
			UpdatedAt: srv.now(),
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to track login session", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to track login session")
	}

	metrics.SessionEvents.WithLabelValues("login").Inc()
	if displaced != nil {
		metrics.SessionEvents.WithLabelValues("displaced").Inc()
		srv.log(ctx).Info("Previous session displaced by new login",
			slog.Any("user_id", userID),
			slog.Any("previous_session_id", *displaced),
		)
	}

	return nil
}

// OnLogout clears the tracked session of userID.
func (srv *sessionGuard) OnLogout(ctx context.Context, userID uuid.UUID) error {
	tracker, err := srv.trackerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find session tracker")
	}
	if tracker == nil {
		return nil
	}

	tracker.SessionID = nil
	tracker.UpdatedAt = srv.now()
	if err := srv.trackerRepo.Upsert(ctx, tracker); err != nil {
		return errors.Wrap(err, "failed to clear session tracker")
	}

	metrics.SessionEvents.WithLabelValues("logout").Inc()

	return nil
}

// Check reports whether sessionID is the session tracked for userID.
func (srv *sessionGuard) Check(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	tracker, err := srv.trackerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find session tracker")
	}

	// users that never logged in through the guard are not tracked
	if tracker == nil {
		return true, nil
	}

	if !tracker.Holds(sessionID) {
		metrics.SessionEvents.WithLabelValues("duplicate_rejected").Inc()

		return false, nil
	}

	return true, nil
}

// Displaced reports whether the tracker of userID holds a session other than sessionID.
func (srv *sessionGuard) Displaced(ctx context.Context, userID, sessionID uuid.UUID) (bool, error) {
	tracker, err := srv.trackerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to find session tracker")
	}

	return tracker != nil && tracker.Displaces(sessionID), nil
}
