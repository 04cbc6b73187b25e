package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/web/middleware"
	"arthurflix/internal/delivery/web/response"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const duplicateSessionMessage = "You were signed out because your account was used to sign in on another device."

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// LoginPageData feeds the login template.
type LoginPageData struct {
	Next     string
	Username string
}

// RegisterPageData feeds the register template.
type RegisterPageData struct {
	Input   *usecase.RegisterInput
	Avatars []*entity.Avatar
}

// AuthHandler serves sign-up, login and logout.
type AuthHandler struct {
	accounts usecase.AccountUsecase
	library  usecase.LibraryUsecase
	session  *middleware.SessionMiddleware
	logger   *slog.Logger
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Accounts usecase.AccountUsecase
	Library  usecase.LibraryUsecase
	Session  *middleware.SessionMiddleware
	Logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		accounts: params.Accounts,
		library:  params.Library,
		session:  params.Session,
		logger:   params.Logger,
	}
}

// LoginPage shows the login form. Signed-in users go home unless a reason is given.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	reason := c.QueryParam("reason")
	if deliverycontext.GetPrincipal(c) != nil && reason == "" {
		return c.Redirect(http.StatusFound, "/")
	}

	data := &LoginPageData{Next: c.QueryParam("next")}
	if reason == constants.ReasonDuplicateSession {
		return response.PageWithMessage(c, http.StatusOK, "login", "Log in", duplicateSessionMessage, data)
	}

	return response.Page(c, http.StatusOK, "login", "Log in", data)
}

// Login verifies the credentials and opens a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	data := &LoginPageData{Next: form.Next, Username: form.Username}

	if err := c.Validate(&form); err != nil {
		return h.loginFailed(c, err, data)
	}

	meta := usecase.LoginMeta{UserAgent: c.Request().UserAgent(), IP: c.RealIP()}
	result, err := h.accounts.Login(c.Request().Context(), form.Username, form.Password, meta)
	if err != nil {
		return h.loginFailed(c, err, data)
	}

	h.session.SetCookie(c, result.Token, result.ExpiresAt)

	return c.Redirect(http.StatusFound, safeNext(form.Next))
}

func (h *AuthHandler) loginFailed(c echo.Context, err error, data *LoginPageData) error {
	status, message, ok := formFailure(err)
	if !ok {
		return errors.WithStack(err)
	}

	return response.PageWithMessage(c, status, "login", "Log in", message, data)
}

// RegisterPage shows the sign-up form with the avatar picker.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	if deliverycontext.GetPrincipal(c) != nil {
		return c.Redirect(http.StatusFound, "/")
	}

	return h.renderRegister(c, http.StatusOK, "", &usecase.RegisterInput{})
}

// Register creates the account, signs it in and sends it to key activation.
func (h *AuthHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	err := bindAvatar(c, input)
	if err == nil {
		err = c.Validate(input)
	}
	if err == nil {
		var result *usecase.LoginResult
		meta := usecase.LoginMeta{UserAgent: c.Request().UserAgent(), IP: c.RealIP()}
		if result, err = h.accounts.Register(c.Request().Context(), input, meta); err == nil {
			h.session.SetCookie(c, result.Token, result.ExpiresAt)

			return c.Redirect(http.StatusFound, constants.ActivatePath)
		}
	}

	status, message, ok := formFailure(err)
	if !ok {
		return errors.WithStack(err)
	}
	input.Password, input.Password2 = "", ""

	return h.renderRegister(c, status, message, input)
}

// bindAvatar reads the optional avatar choice, which the form binder leaves alone.
func bindAvatar(c echo.Context, input *usecase.RegisterInput) error {
	raw := c.FormValue("avatar")
	if raw == "" {
		return nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return errors.WithStack(domainerrors.ErrAvatarNotFound)
	}
	input.AvatarID = &id

	return nil
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, message string, input *usecase.RegisterInput) error {
	avatars, err := h.library.Avatars(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PageWithMessage(c, status, "register", "Sign up", message, &RegisterPageData{Input: input, Avatars: avatars})
}

// Logout ends the current session.
func (h *AuthHandler) Logout(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal != nil {
		if err := h.accounts.Logout(c.Request().Context(), principal.UserID, principal.SessionID); err != nil {
			return errors.WithStack(err)
		}
	}
	h.session.ClearCookie(c)

	return c.Redirect(http.StatusFound, constants.LoginPath)
}

// SessionEnded explains a forced sign-out.
func (h *AuthHandler) SessionEnded(c echo.Context) error {
	return response.Page(c, http.StatusOK, "session_ended", "Signed out", nil)
}
