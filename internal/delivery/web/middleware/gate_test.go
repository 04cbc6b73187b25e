package middleware

import (
	"net/http"
	"testing"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/entity"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateMiddleware_RequireMembership(t *testing.T) {
	principal := &entity.Principal{UserID: uuid.New(), SessionID: uuid.New()}

	tests := []struct {
		name         string
		decision     entity.AccessDecision
		wantStatus   int
		wantLocation string
	}{
		{name: "allowed", decision: entity.Allow(), wantStatus: http.StatusOK},
		{
			name:         "activation required",
			decision:     entity.RedirectTo("/key/activate/?reason=activate", entity.ReasonActivate),
			wantStatus:   http.StatusFound,
			wantLocation: "/key/activate/?reason=activate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := mockUsecase.NewMockAccessGate(t)
			gate.EXPECT().Authorize(mock.Anything, principal, "/movies/alpha/?q=1").Return(tt.decision, nil).Once()

			c, rec := newContext(http.MethodGet, "/movies/alpha/?q=1")
			deliverycontext.SetPrincipal(c, principal)

			require.NoError(t, NewGateMiddleware(gate, discardLogger()).RequireMembership(okHandler)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
			assert.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "no-store")
		})
	}
}

func TestGateMiddleware_RequireMembership_Error(t *testing.T) {
	gate := mockUsecase.NewMockAccessGate(t)
	gate.EXPECT().Authorize(mock.Anything, (*entity.Principal)(nil), "/").
		Return(entity.AccessDecision{}, errors.New("db down")).Once()

	c, _ := newContext(http.MethodGet, "/")

	err := NewGateMiddleware(gate, discardLogger()).RequireMembership(okHandler)(c)
	require.Error(t, err)
}

func TestGateMiddleware_RequireLogin(t *testing.T) {
	m := NewGateMiddleware(mockUsecase.NewMockAccessGate(t), discardLogger())

	c, rec := newContext(http.MethodGet, "/key/activate/")
	require.NoError(t, m.RequireLogin(okHandler)(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fkey%2Factivate%2F", rec.Header().Get(echo.HeaderLocation))

	c, rec = newContext(http.MethodGet, "/key/activate/")
	deliverycontext.SetPrincipal(c, &entity.Principal{UserID: uuid.New()})
	require.NoError(t, m.RequireLogin(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, noStore, rec.Header().Get(echo.HeaderCacheControl))
}
