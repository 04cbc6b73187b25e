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
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns the repository as a domain.SessionRepository interface.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	sessionM := &model.SessionModel{
		ID:        session.ID,
		UserID:    session.UserID,
		UserAgent: session.UserAgent,
		IP:        session.IP,
		ExpiresAt: session.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	return &entity.Session{
		ID:        sessionM.ID,
		UserID:    sessionM.UserID,
		UserAgent: sessionM.UserAgent,
		IP:        sessionM.IP,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}, nil
}

func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

type sessionTrackerRepository struct {
	db *gorm.DB
}

// NewSessionTrackerRepository returns the repository as a domain.SessionTrackerRepository interface.
func NewSessionTrackerRepository(db *gorm.DB) repository.SessionTrackerRepository {
	return &sessionTrackerRepository{db: db}
}

func (repo *sessionTrackerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.SessionTracker, error) {
	var trackerM model.SessionTrackerModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&trackerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session tracker")
	}

	return &entity.SessionTracker{
		UserID:    trackerM.UserID,
		SessionID: trackerM.SessionID,
		UpdatedAt: trackerM.UpdatedAt,
	}, nil
}

func (repo *sessionTrackerRepository) Upsert(ctx context.Context, tracker *entity.SessionTracker) error {
	trackerM := &model.SessionTrackerModel{
		UserID:    tracker.UserID,
		SessionID: tracker.SessionID,
		UpdatedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_id", "updated_at"}),
	}).Create(trackerM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert session tracker")
	}
	tracker.UpdatedAt = trackerM.UpdatedAt

	return nil
}
