package auth

import (
	"testing"
	"time"

	"arthurflix/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, secret string) *jwtSessionService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = secret
	cfg.Env.ServiceName = "arthurflix"

	svc, err := NewJWTSessionService(cfg)
	require.NoError(t, err)

	return svc.(*jwtSessionService)
}

func TestJWTSessionService_SignAndParse(t *testing.T) {
	svc := newTestSessionService(t, "test_session_secret_key_very_long_for_testing")

	userID := uuid.New()
	sessionID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := svc.Sign(userID, sessionID, expiresAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
}

func TestJWTSessionService_RejectsBadTokens(t *testing.T) {
	svc := newTestSessionService(t, "test_session_secret_key_very_long_for_testing")
	other := newTestSessionService(t, "another_secret_key_that_does_not_match")

	foreign, err := other.Sign(uuid.New(), uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	expired, err := svc.Sign(uuid.New(), uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	wrongType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SessionID: uuid.NewString(),
		Type:      "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(svc.secret)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"wrong secret": foreign,
		"expired":      expired,
		"wrong type":   wrongType,
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := svc.Parse(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestNewJWTSessionService_RequiresSecret(t *testing.T) {
	_, err := NewJWTSessionService(&config.Config{})
	assert.Error(t, err)
}
