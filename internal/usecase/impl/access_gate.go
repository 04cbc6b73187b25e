package impl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	deliverycontext "arthurflix/internal/delivery/context"
	"arthurflix/internal/domain/constants"
	"arthurflix/internal/domain/entity"
	"arthurflix/internal/domain/repository"
	"arthurflix/internal/infra/metrics"
	"arthurflix/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessGate implements the AccessGate interface.
//
// Policy for a user's linked key:
//   - no linked key, or a linked key that was deactivated: activate
//   - linked, active and past expiry (or never given one): renew
//   - linked, active and not past expiry: allow
type accessGate struct {
	membershipRepo repository.MembershipKeyRepository
	now            func() time.Time
	logger         *slog.Logger
}

// AccessGateParams holds dependencies for AccessGate, injected by Fx.
type AccessGateParams struct {
	fx.In

	MembershipRepo repository.MembershipKeyRepository
	Logger         *slog.Logger
}

// NewAccessGate is the constructor for accessGate.
func NewAccessGate(params AccessGateParams) usecase.AccessGate {
	return &accessGate{
		membershipRepo: params.MembershipRepo,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Authorize decides whether principal may open requestedPath.
func (srv *accessGate) Authorize(ctx context.Context, principal *entity.Principal, requestedPath string) (entity.AccessDecision, error) {
	if principal == nil {
		metrics.AccessDecisions.WithLabelValues(string(entity.ReasonLoginRequired)).Inc()

		return entity.RedirectTo(loginRedirect(requestedPath), entity.ReasonLoginRequired), nil
	}

	key, err := srv.membershipRepo.FindByUserID(ctx, principal.UserID)
	if err != nil && !errors.Is(err, repository.ErrMembershipKeyNotFound) {
		return entity.AccessDecision{}, errors.Wrap(err, "failed to find membership key")
	}

	decision := decide(key, srv.now())
	if decision.Allowed() {
		metrics.AccessDecisions.WithLabelValues("allow").Inc()
	} else {
		metrics.AccessDecisions.WithLabelValues(string(decision.Reason)).Inc()
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Access redirected",
			slog.Any("user_id", principal.UserID),
			slog.String("path", requestedPath),
			slog.String("reason", string(decision.Reason)),
		)
	}

	return decision, nil
}

func decide(key *entity.MembershipKey, now time.Time) entity.AccessDecision {
	switch {
	case key.IsValid(now):
		return entity.Allow()
	case key == nil || !key.IsActive:
		return entity.RedirectTo(activationRedirect(entity.ReasonActivate), entity.ReasonActivate)
	default:
		return entity.RedirectTo(activationRedirect(entity.ReasonRenew), entity.ReasonRenew)
	}
}

func loginRedirect(next string) string {
	if next == "" {
		return constants.LoginPath
	}

	return constants.LoginPath + "?next=" + url.QueryEscape(next)
}

func activationRedirect(reason entity.RedirectReason) string {
	return constants.ActivatePath + "?reason=" + string(reason)
}
