package usecase

import (
	"context"
	"time"

	"arthurflix/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput is the sign-up form.
type RegisterInput struct {
	Username  string `json:"username" form:"username" validate:"required,min=3,max=150,alphanumunicode"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" form:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=150"`
	Password  string `json:"password1" form:"password1" validate:"required"`
	Password2 string `json:"password2" form:"password2" validate:"required"`
	AvatarID  *int   `json:"avatar" form:"-"`
}

// LoginMeta describes the client opening a session.
type LoginMeta struct {
	UserAgent string
	IP        string
}

// LoginResult is a freshly opened session and its signed cookie value.
type LoginResult struct {
	User      *entity.User
	SessionID uuid.UUID
	Token     string
	ExpiresAt time.Time
}

// AccountUsecase covers sign-up, login and logout.
type AccountUsecase interface {
	// Register creates the user and its profile, then logs the user in.
	Register(ctx context.Context, input *RegisterInput, meta LoginMeta) (*LoginResult, error)

	// Login verifies credentials and opens a new session, displacing any previous one.
	Login(ctx context.Context, username, password string, meta LoginMeta) (*LoginResult, error)

	// Logout ends the session and clears the user's tracked session.
	Logout(ctx context.Context, userID, sessionID uuid.UUID) error

	// EndSession deletes one session without touching the user's tracked session.
	EndSession(ctx context.Context, sessionID uuid.UUID) error

	// Authenticate resolves a cookie value to the principal of a live session.
	// Returns domainerrors.ErrSessionInvalid when the cookie or its session is not usable.
	Authenticate(ctx context.Context, token string) (*entity.Principal, error)
}
