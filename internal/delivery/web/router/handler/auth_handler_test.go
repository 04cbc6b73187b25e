package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	mockUsecase "arthurflix/internal/mocks/usecase"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type authFixture struct {
	e        *echo.Echo
	accounts *mockUsecase.MockAccountUsecase
	library  *mockUsecase.MockLibraryUsecase
	handler  *AuthHandler
}

func newAuthFixture(t *testing.T) *authFixture {
	f := &authFixture{
		e:        newTestEcho(t),
		accounts: mockUsecase.NewMockAccountUsecase(t),
		library:  mockUsecase.NewMockLibraryUsecase(t),
	}
	f.handler = NewAuthHandler(AuthHandlerParams{
		Accounts: f.accounts,
		Library:  f.library,
		Session:  testSessionMiddleware(),
		Logger:   discardLogger(),
	})

	return f
}

func TestAuthHandler_LoginPage(t *testing.T) {
	f := newAuthFixture(t)

	rec := serve(t, f.e, f.handler.LoginPage, request{target: "/login/?next=/movie/alpha/"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="/movie/alpha/"`)

	rec = serve(t, f.e, f.handler.LoginPage, request{target: "/login/?reason=duplicate_session"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "another device")

	rec = serve(t, f.e, f.handler.LoginPage, request{target: "/login/", principal: testPrincipal()})
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Login(t *testing.T) {
	f := newAuthFixture(t)
	expires := time.Now().Add(time.Hour)
	f.accounts.EXPECT().Login(mock.Anything, "arthur", "s3cret-pass", mock.Anything).
		Return(&usecase.LoginResult{SessionID: uuid.New(), Token: "signed", ExpiresAt: expires}, nil).Once()

	rec := serve(t, f.e, f.handler.Login, request{
		method: http.MethodPost,
		target: "/login/",
		form:   url.Values{"username": {"arthur"}, "password": {"s3cret-pass"}, "next": {"/movie/alpha/"}},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/movie/alpha/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "af_session=signed")
}

func TestAuthHandler_Login_OffsiteNextIgnored(t *testing.T) {
	f := newAuthFixture(t)
	f.accounts.EXPECT().Login(mock.Anything, "arthur", "pw", mock.Anything).
		Return(&usecase.LoginResult{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	rec := serve(t, f.e, f.handler.Login, request{
		method: http.MethodPost,
		target: "/login/",
		form:   url.Values{"username": {"arthur"}, "password": {"pw"}, "next": {"//evil.example/"}},
	})

	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		f := newAuthFixture(t)
		f.accounts.EXPECT().Login(mock.Anything, "arthur", "wrong", mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

		rec := serve(t, f.e, f.handler.Login, request{
			method: http.MethodPost,
			target: "/login/",
			form:   url.Values{"username": {"arthur"}, "password": {"wrong"}},
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid username or password.")
		assert.Empty(t, rec.Header().Get("Set-Cookie"))
	})

	t.Run("missing password", func(t *testing.T) {
		f := newAuthFixture(t)

		rec := serve(t, f.e, f.handler.Login, request{
			method: http.MethodPost,
			target: "/login/",
			form:   url.Values{"username": {"arthur"}},
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "password is required")
	})

	t.Run("store failure", func(t *testing.T) {
		f := newAuthFixture(t)
		f.accounts.EXPECT().Login(mock.Anything, "arthur", "pw", mock.Anything).
			Return(nil, errors.New("db down")).Once()

		rec := serve(t, f.e, f.handler.Login, request{
			method: http.MethodPost,
			target: "/login/",
			form:   url.Values{"username": {"arthur"}, "password": {"pw"}},
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	f := newAuthFixture(t)
	f.accounts.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Username == "arthur" && in.AvatarID != nil && *in.AvatarID == 2
	}), mock.Anything).Return(&usecase.LoginResult{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	rec := serve(t, f.e, f.handler.Register, request{
		method: http.MethodPost,
		target: "/register/",
		form: url.Values{
			"username":  {"arthur"},
			"email":     {"arthur@example.com"},
			"password1": {"Correct-Horse-7"},
			"password2": {"Correct-Horse-7"},
			"avatar":    {"2"},
		},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/key/activate/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "af_session=signed")
}

func TestAuthHandler_Register_Rejected(t *testing.T) {
	f := newAuthFixture(t)
	f.accounts.EXPECT().Register(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrPasswordMismatch)).Once()
	f.library.EXPECT().Avatars(mock.Anything).Return([]*entity.Avatar{{ID: 1, Name: "Owl"}}, nil).Once()

	rec := serve(t, f.e, f.handler.Register, request{
		method: http.MethodPost,
		target: "/register/",
		form: url.Values{
			"username":  {"arthur"},
			"password1": {"Correct-Horse-7"},
			"password2": {"Correct-Horse-8"},
		},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "didn&#39;t match")
	assert.Contains(t, body, `value="arthur"`)
	assert.NotContains(t, body, "Correct-Horse-7")
}

func TestAuthHandler_RegisterPage(t *testing.T) {
	f := newAuthFixture(t)
	f.library.EXPECT().Avatars(mock.Anything).Return([]*entity.Avatar{{ID: 1, Name: "Owl", ImageURL: "/static/owl.png"}}, nil).Once()

	rec := serve(t, f.e, f.handler.RegisterPage, request{target: "/register/"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/owl.png")
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAuthFixture(t)
	principal := testPrincipal()
	f.accounts.EXPECT().Logout(mock.Anything, principal.UserID, principal.SessionID).Return(nil).Once()

	rec := serve(t, f.e, f.handler.Logout, request{method: http.MethodPost, target: "/logout/", principal: principal})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "af_session=;")
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	f := newAuthFixture(t)

	rec := serve(t, f.e, f.handler.Logout, request{target: "/logout/"})

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestSafeNext(t *testing.T) {
	tests := map[string]string{
		"":                  "/",
		"/profile/":         "/profile/",
		"//evil.example":    "/",
		"/\\evil.example":   "/",
		"https://evil.test": "/",
	}

	for in, want := range tests {
		assert.Equal(t, want, safeNext(in), in)
	}
}
