package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/web/response"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const profilePath = "/profile/"

// ProfilePageData feeds the profile template.
type ProfilePageData struct {
	Page *usecase.ProfilePage
}

// ProfileHandler serves the profile page.
type ProfileHandler struct {
	library usecase.LibraryUsecase
	logger  *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(library usecase.LibraryUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{library: library, logger: logger}
}

func (h *ProfileHandler) Show(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	page, err := h.library.Profile(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "profile", "Profile", &ProfilePageData{Page: page})
}

// ChangeAvatar switches the avatar and returns to the profile. A missing choice is ignored.
func (h *ProfileHandler) ChangeAvatar(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	raw := c.FormValue("avatar_id")
	if raw == "" {
		return c.Redirect(http.StatusFound, profilePath)
	}

	avatarID, err := strconv.Atoi(raw)
	if err != nil {
		return errors.WithStack(domainerrors.ErrAvatarNotFound)
	}

	if _, err := h.library.ChangeAvatar(c.Request().Context(), principal.UserID, avatarID); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, profilePath)
}
