package impl

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/domain/service"
	mockRepo "arthurflix/internal/mocks/repository"
	mockService "arthurflix/internal/mocks/service"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memSessions keeps sessions and trackers in memory so the account service
// and the session guard can share state.
type memSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]entity.Session
	trackers map[uuid.UUID]entity.SessionTracker
}

func newMemSessions() *memSessions {
	return &memSessions{
		sessions: map[uuid.UUID]entity.Session{},
		trackers: map[uuid.UUID]entity.SessionTracker{},
	}
}

func (m *memSessions) Create(_ context.Context, s *entity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s

	return nil
}

func (m *memSessions) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &s, nil
}

func (m *memSessions) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)

	return nil
}

type memTrackers struct{ *memSessions }

func (m memTrackers) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.SessionTracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trackers[userID]
	if !ok {
		return nil, nil
	}

	return &t, nil
}

func (m memTrackers) Upsert(_ context.Context, t *entity.SessionTracker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trackers[t.UserID] = *t

	return nil
}

func TestSessionFlow_SecondLoginEndsFirstSession(t *testing.T) {
	ctx := context.Background()
	store := newMemSessions()
	trackers := memTrackers{store}
	user := &entity.User{ID: uuid.New(), Username: "moviefan", PasswordHash: "hashed"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockSessionTokenService(t)

	expectTx(txManager, factory)
	factory.EXPECT().TrackerRepo().Return(trackers)
	factory.EXPECT().SessionRepo().Return(store)
	userRepo.EXPECT().FindByUsername(ctx, "moviefan").Return(user, nil)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
	tokens.EXPECT().Sign(user.ID, mock.Anything, mock.Anything).
		RunAndReturn(func(_ uuid.UUID, sessionID uuid.UUID, _ time.Time) (string, error) {
			return "cookie:" + sessionID.String(), nil
		})
	tokens.EXPECT().Parse(mock.Anything).
		RunAndReturn(func(token string) (*service.SessionClaims, error) {
			id, err := uuid.Parse(strings.TrimPrefix(token, "cookie:"))
			if err != nil {
				return nil, errors.WithStack(err)
			}

			return &service.SessionClaims{UserID: user.ID, SessionID: id}, nil
		})

	guard := NewSessionGuard(SessionGuardParams{TxManager: txManager, TrackerRepo: trackers, Logger: discardLogger()})
	accounts := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  store,
		Hasher:       hasher,
		TokenService: tokens,
		Guard:        guard,
		Logger:       discardLogger(),
	})

	first, err := accounts.Login(ctx, "moviefan", "secret-pass", usecase.LoginMeta{})
	require.NoError(t, err)
	principal, err := accounts.Authenticate(ctx, first.Token)
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, principal.SessionID)

	second, err := accounts.Login(ctx, "moviefan", "secret-pass", usecase.LoginMeta{})
	require.NoError(t, err)

	_, err = accounts.Authenticate(ctx, first.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionDisplaced)

	principal, err = accounts.Authenticate(ctx, second.Token)
	require.NoError(t, err)
	assert.Equal(t, second.SessionID, principal.SessionID)

	current, err := guard.Check(ctx, user.ID, second.SessionID)
	require.NoError(t, err)
	assert.True(t, current)
}
