package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/web/response"
	"arthurflix/internal/domain/entity"
	domainerrors "arthurflix/internal/domain/errors"
	"arthurflix/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListPageData feeds the list template.
type ListPageData struct {
	Query    string
	Category entity.ItemType
	Page     *entity.Page[*entity.CatalogueItem]
}

// DetailPageData feeds the detail template.
type DetailPageData struct {
	Detail        *usecase.ItemDetail
	LibraryStatus entity.LibraryStatus
}

// EpisodesPageData feeds the episodes template.
type EpisodesPageData struct {
	Item     *entity.CatalogueItem
	Episodes []*entity.Episode
}

// StreamPageData feeds the stream template.
type StreamPageData struct {
	StreamURL string
}

type toggleForm struct {
	MovieID string `form:"movie_id"`
	Status  string `form:"status"`
}

type toggleResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type statusResponse struct {
	Exists bool    `json:"exists"`
	Status *string `json:"status"`
}

// CatalogueHandler serves the gated browsing pages and the library JSON endpoints.
type CatalogueHandler struct {
	catalogue usecase.CatalogueUsecase
	library   usecase.LibraryUsecase
	logger    *slog.Logger
}

// NewCatalogueHandler is the constructor for CatalogueHandler.
func NewCatalogueHandler(catalogue usecase.CatalogueUsecase, library usecase.LibraryUsecase, logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{catalogue: catalogue, library: library, logger: logger}
}

// Home lists the whole catalogue.
func (h *CatalogueHandler) Home(c echo.Context) error {
	query := c.QueryParam("q")

	page, err := h.catalogue.List(c.Request().Context(), query, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "list", "Home", &ListPageData{Query: query, Page: page})
}

// Category lists one item type.
func (h *CatalogueHandler) Category(c echo.Context) error {
	category := entity.ItemType(c.Param("name"))
	switch category {
	case entity.ItemTypeMovie, entity.ItemTypeTV, entity.ItemTypeAnime:
	default:
		return errors.WithStack(domainerrors.ErrNotFound)
	}
	query := c.QueryParam("q")

	page, err := h.catalogue.ListByCategory(c.Request().Context(), category, query, pageParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "list", string(category), &ListPageData{Query: query, Category: category, Page: page})
}

// Detail shows one item and records the visit.
func (h *CatalogueHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()
	principal := deliverycontext.GetPrincipal(c)

	var viewer *uuid.UUID
	if principal != nil {
		viewer = &principal.UserID
	}

	detail, err := h.catalogue.Detail(ctx, c.Param("slug"), viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	data := &DetailPageData{Detail: detail}
	if viewer != nil {
		if data.LibraryStatus, err = h.library.Status(ctx, *viewer, detail.Item.ID); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Page(c, http.StatusOK, "detail", detail.Item.Title, data)
}

// Episodes lists the episodes of a series.
func (h *CatalogueHandler) Episodes(c echo.Context) error {
	detail, err := h.catalogue.Episodes(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "episodes", detail.Item.Title, &EpisodesPageData{Item: detail.Item, Episodes: detail.Episodes})
}

// Stream embeds the player for an item or one of its episodes.
func (h *CatalogueHandler) Stream(c echo.Context) error {
	episode := 0
	if raw := c.Param("episode"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return errors.WithStack(domainerrors.ErrEpisodeNotFound)
		}
		episode = n
	}

	streamURL, err := h.catalogue.StreamURL(c.Request().Context(), c.Param("slug"), c.Param("quality"), episode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, http.StatusOK, "stream", "Watch", &StreamPageData{StreamURL: streamURL})
}

// Toggle puts an item on a shelf or takes it off.
func (h *CatalogueHandler) Toggle(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	var form toggleForm
	_ = c.Bind(&form)

	itemID, err := uuid.Parse(form.MovieID)
	status := entity.LibraryStatus(form.Status)
	if err != nil || !status.Valid() {
		return c.JSON(http.StatusBadRequest, toggleResponse{Message: "Invalid data"})
	}

	action, err := h.library.Toggle(c.Request().Context(), principal.UserID, itemID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toggleResponse{Success: true, Action: string(action), Status: string(status)})
}

// LibraryStatus reports the shelf an item sits on.
func (h *CatalogueHandler) LibraryStatus(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{})
	}

	status, err := h.library.Status(c.Request().Context(), principal.UserID, itemID)
	if err != nil {
		return errors.WithStack(err)
	}
	if status == "" {
		return c.JSON(http.StatusOK, statusResponse{})
	}

	s := string(status)

	return c.JSON(http.StatusOK, statusResponse{Exists: true, Status: &s})
}
