package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"arthurflix/config"
	"arthurflix/internal/delivery/web/response"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DownloadHandler drives the download flow from the detail page to the file.
type DownloadHandler struct {
	downloads usecase.DownloadUsecase
	baseURL   string
	logger    *slog.Logger
}

// NewDownloadHandler is the constructor for DownloadHandler.
func NewDownloadHandler(downloads usecase.DownloadUsecase, cfg *config.Config, logger *slog.Logger) *DownloadHandler {
	h := &DownloadHandler{downloads: downloads, logger: logger}
	if cfg != nil {
		h.baseURL = strings.TrimRight(cfg.HTTP.BaseURL, "/")
	}

	return h
}

// Start issues a download token and sends the user through the short link.
func (h *DownloadHandler) Start(c echo.Context) error {
	target, err := h.downloads.Start(c.Request().Context(), c.Param("slug"), c.Param("quality"), h.base(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, target)
}

// Resolve is where the short link lands. Valid tokens continue to the landing page.
func (h *DownloadHandler) Resolve(c echo.Context) error {
	target, err := h.downloads.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, target)
}

// Landing shows the Telegram deep link, its QR code and the direct link.
func (h *DownloadHandler) Landing(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" || c.QueryParam("title") == "" || c.QueryParam("quality") == "" {
		return errors.WithStack(domainerrors.ErrMissingDownloadParams)
	}

	page, err := h.downloads.Landing(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "landing", page.Title, page)
}

// Direct counts one use of a direct token and redirects to its file.
func (h *DownloadHandler) Direct(c echo.Context) error {
	destination, err := h.downloads.Redeem(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, destination)
}

func (h *DownloadHandler) base(c echo.Context) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}
