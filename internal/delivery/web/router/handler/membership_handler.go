package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/delivery/web/response"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ActivatePageData feeds the activate template.
type ActivatePageData struct {
	Reason   string
	Status   *entity.MembershipStatus
	CanRenew bool
}

type activateForm struct {
	Key          string `form:"key"`
	ForceRenewal string `form:"force_renewal"`
}

// MembershipHandler serves key activation and renewal.
type MembershipHandler struct {
	membership usecase.MembershipUsecase
	logger     *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler.
func NewMembershipHandler(membership usecase.MembershipUsecase, logger *slog.Logger) *MembershipHandler {
	return &MembershipHandler{membership: membership, logger: logger}
}

// ActivatePage shows the key form. Members with a valid key go home unless they ask to renew early.
func (h *MembershipHandler) ActivatePage(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	status, err := h.membership.Status(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	force := c.QueryParam("force_renewal") != ""
	if status.State == entity.MembershipActive && !force {
		return c.Redirect(http.StatusFound, "/")
	}

	return response.Page(c, http.StatusOK, "activate", "Membership", h.pageData(c.QueryParam("reason"), status))
}

// Activate links the submitted key to the signed-in user.
func (h *MembershipHandler) Activate(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	ctx := c.Request().Context()

	var form activateForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activation input")
	}
	force := form.ForceRenewal != "" || c.QueryParam("force_renewal") != ""

	if _, err := h.membership.Activate(ctx, principal.UserID, form.Key, force); err != nil {
		code, message, ok := formFailure(err)
		if !ok {
			return errors.WithStack(err)
		}

		status, statusErr := h.membership.Status(ctx, principal.UserID)
		if statusErr != nil {
			return errors.WithStack(statusErr)
		}

		return response.PageWithMessage(c, code, "activate", "Membership", message, h.pageData(c.QueryParam("reason"), status))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Membership activated", slog.Any("user_id", principal.UserID))

	return c.Redirect(http.StatusFound, "/")
}

func (h *MembershipHandler) pageData(reason string, status *entity.MembershipStatus) *ActivatePageData {
	if reason == "" && status != nil && status.State == entity.MembershipExpired {
		reason = constants.ReasonRenew
	}

	return &ActivatePageData{
		Reason:   reason,
		Status:   status,
		CanRenew: status != nil && status.State == entity.MembershipActive,
	}
}
