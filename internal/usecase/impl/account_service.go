package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"arthurflix/config"
	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/domain/service"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSessionTTL = 14 * 24 * time.Hour
	minPasswordLength = 8
)

// commonPasswords rejects the handful of passwords people actually try first.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "12345678": {}, "123456789": {}, "1234567890": {},
	"qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "11111111": {}, "abc12345": {},
	"letmein1": {}, "welcome1": {}, "football": {}, "sunshine": {}, "princess": {},
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.SessionTokenService
	guard        usecase.SessionGuard
	sessionTTL   time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.SessionTokenService
	Guard        usecase.SessionGuard
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	ttl := defaultSessionTTL
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		guard:        params.Guard,
		sessionTTL:   ttl,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account with its profile and opens the first session.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput, meta usecase.LoginMeta) (*usecase.LoginResult, error) {
	if input.Password != input.Password2 {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}
	if err := validatePasswordStrength(input.Password, input.Username, input.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.TrimSpace(input.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		libraryRepo := repoFactory.LibraryRepo()

		// 1. Username must be free
		_, err := userRepo.FindByUsername(ctx, user.Username)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check username")
		}

		// 2. Chosen avatar must exist
		if input.AvatarID != nil {
			if _, err := libraryRepo.FindAvatar(ctx, *input.AvatarID); err != nil {
				if errors.Is(err, repository.ErrAvatarNotFound) {
					return errors.WithStack(domainerrors.ErrAvatarNotFound)
				}

				return errors.Wrap(err, "failed to find avatar")
			}
		}

		// 3. Create user and profile
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return libraryRepo.SaveProfile(ctx, &entity.UserProfile{UserID: user.ID, AvatarID: input.AvatarID})
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", user.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID), slog.String("username", user.Username))

	return srv.openSession(ctx, user, meta)
}

// Login verifies the credentials and opens a new session.
func (srv *accountService) Login(ctx context.Context, username, password string, meta usecase.LoginMeta) (*usecase.LoginResult, error) {
	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("username", username), slog.String("ip", meta.IP))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	return srv.openSession(ctx, user, meta)
}

func (srv *accountService) openSession(ctx context.Context, user *entity.User, meta usecase.LoginMeta) (*usecase.LoginResult, error) {
	now := srv.now()
	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		UserAgent: meta.UserAgent,
		IP:        meta.IP,
		ExpiresAt: now.Add(srv.sessionTTL),
		CreatedAt: now,
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	if err := srv.guard.OnLogin(ctx, user.ID, session.ID); err != nil {
		srv.discardSession(ctx, session.ID)

		return nil, errors.Wrap(err, "failed to register session")
	}

	token, err := srv.tokenService.Sign(user.ID, session.ID, session.ExpiresAt)
	if err != nil {
		srv.discardSession(ctx, session.ID)

		return nil, errors.Wrap(err, "failed to sign session")
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID), slog.Any("session_id", session.ID))

	return &usecase.LoginResult{
		User:      user,
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// discardSession removes a session row that never reached the client.
func (srv *accountService) discardSession(ctx context.Context, sessionID uuid.UUID) {
	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		srv.log(ctx).Warn("Failed to discard unused session", slog.Any("session_id", sessionID), slog.Any("error", err))
	}
}

// Logout clears the tracked session and deletes the session row.
func (srv *accountService) Logout(ctx context.Context, userID, sessionID uuid.UUID) error {
	if err := srv.guard.OnLogout(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear tracked session")
	}

	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	return nil
}

// EndSession deletes a session that lost its place to a newer login.
func (srv *accountService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Displaced session ended", slog.Any("session_id", sessionID))

	return nil
}

// Authenticate resolves a signed cookie value to the principal of its session.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*entity.Principal, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, err.Error())
	}

	session, err := srv.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, srv.endedSessionError(ctx, claims)
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session belongs to another user")
	}

	if session.IsExpired(srv.now()) {
		if err := srv.sessionRepo.Delete(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("session_id", session.ID), slog.Any("error", err))
		}

		return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "session expired")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSessionInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return &entity.Principal{
		UserID:    user.ID,
		SessionID: session.ID,
		Username:  user.Username,
	}, nil
}

// endedSessionError tells a session removed by a newer login apart from one that simply ended.
func (srv *accountService) endedSessionError(ctx context.Context, claims *service.SessionClaims) error {
	displaced, err := srv.guard.Displaced(ctx, claims.UserID, claims.SessionID)
	if err != nil {
		srv.log(ctx).Warn("Failed to check for a newer session", slog.Any("user_id", claims.UserID), slog.Any("error", err))
	}
	if displaced {
		return errors.WithStack(domainerrors.ErrSessionDisplaced)
	}

	return errors.Wrap(domainerrors.ErrSessionInvalid, "session ended")
}

// validatePasswordStrength rejects short, numeric-only, common passwords and passwords close to the
// user's own username or email.
func validatePasswordStrength(password, username, email string) error {
	if len([]rune(password)) < minPasswordLength {
		return domainerrors.ErrPasswordTooWeak.WithDetails("This password is too short. It must contain at least 8 characters.")
	}

	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false

			break
		}
	}
	if numeric {
		return domainerrors.ErrPasswordTooWeak.WithDetails("This password is entirely numeric.")
	}

	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return domainerrors.ErrPasswordTooWeak.WithDetails("This password is too common.")
	}

	for _, attr := range []string{username, strings.SplitN(email, "@", 2)[0]} {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if len(attr) >= 3 && (strings.Contains(lower, attr) || strings.Contains(attr, lower)) {
			return domainerrors.ErrPasswordTooWeak.WithDetails("The password is too similar to your personal information.")
		}
	}

	return nil
}
