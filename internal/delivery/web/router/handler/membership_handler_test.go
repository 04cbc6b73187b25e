package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMembershipHandler_ActivatePage(t *testing.T) {
	expired := time.Now().AddDate(0, 0, -1)
	active := time.Now().AddDate(0, 1, 0)

	tests := []struct {
		name         string
		target       string
		status       *entity.MembershipStatus
		wantStatus   int
		wantBody     string
		wantLocation string
	}{
		{
			name:       "no key",
			target:     "/key/activate/",
			status:     &entity.MembershipStatus{State: entity.MembershipNone},
			wantStatus: http.StatusOK,
			wantBody:   "Activate your membership",
		},
		{
			name:       "expired key asks for renewal",
			target:     "/key/activate/",
			status:     &entity.MembershipStatus{State: entity.MembershipExpired, ExpiresAt: &expired},
			wantStatus: http.StatusOK,
			wantBody:   "Renew your membership",
		},
		{
			name:         "active key goes home",
			target:       "/key/activate/",
			status:       &entity.MembershipStatus{State: entity.MembershipActive, ExpiresAt: &active},
			wantStatus:   http.StatusFound,
			wantLocation: "/",
		},
		{
			name:       "active key with early renewal",
			target:     "/key/activate/?force_renewal=1",
			status:     &entity.MembershipStatus{State: entity.MembershipActive, ExpiresAt: &active},
			wantStatus: http.StatusOK,
			wantBody:   "force_renewal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			membership := mockUsecase.NewMockMembershipUsecase(t)
			principal := testPrincipal()
			membership.EXPECT().Status(mock.Anything, principal.UserID).Return(tt.status, nil).Once()

			rec := serve(t, newTestEcho(t), NewMembershipHandler(membership, discardLogger()).ActivatePage,
				request{target: tt.target, principal: principal})

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestMembershipHandler_Activate(t *testing.T) {
	membership := mockUsecase.NewMockMembershipUsecase(t)
	principal := testPrincipal()
	membership.EXPECT().Activate(mock.Anything, principal.UserID, "K3Y", true).Return(&entity.MembershipKey{Key: "K3Y"}, nil).Once()

	rec := serve(t, newTestEcho(t), NewMembershipHandler(membership, discardLogger()).Activate, request{
		method:    http.MethodPost,
		target:    "/key/activate/",
		form:      url.Values{"key": {"K3Y"}, "force_renewal": {"1"}},
		principal: principal,
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestMembershipHandler_Activate_InvalidKey(t *testing.T) {
	membership := mockUsecase.NewMockMembershipUsecase(t)
	principal := testPrincipal()
	membership.EXPECT().Activate(mock.Anything, principal.UserID, "nope", false).
		Return(nil, errors.WithStack(domainerrors.ErrMembershipKeyInvalid)).Once()
	membership.EXPECT().Status(mock.Anything, principal.UserID).
		Return(&entity.MembershipStatus{State: entity.MembershipNone}, nil).Once()

	rec := serve(t, newTestEcho(t), NewMembershipHandler(membership, discardLogger()).Activate, request{
		method:    http.MethodPost,
		target:    "/key/activate/",
		form:      url.Values{"key": {"nope"}},
		principal: principal,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or already used membership key.")
}

func TestMembershipHandler_Activate_AlreadyActive(t *testing.T) {
	membership := mockUsecase.NewMockMembershipUsecase(t)
	principal := testPrincipal()
	active := time.Now().AddDate(0, 1, 0)
	membership.EXPECT().Activate(mock.Anything, principal.UserID, "K3Y", false).
		Return(nil, errors.WithStack(domainerrors.ErrMembershipAlreadyActive)).Once()
	membership.EXPECT().Status(mock.Anything, principal.UserID).
		Return(&entity.MembershipStatus{State: entity.MembershipActive, ExpiresAt: &active}, nil).Once()

	rec := serve(t, newTestEcho(t), NewMembershipHandler(membership, discardLogger()).Activate, request{
		method:    http.MethodPost,
		target:    "/key/activate/",
		form:      url.Values{"key": {"K3Y"}},
		principal: principal,
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already active")
}
