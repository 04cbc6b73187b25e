package usecase

import (
	"context"

	"arthurflix/internal/domain/entity"
)

// MaintenanceUsecase holds operator tasks run from the CLI or the in-process sweeper.
type MaintenanceUsecase interface {
	// SweepExpiredTokens deletes expired tokens, or only counts them when dryRun is set.
	SweepExpiredTokens(ctx context.Context, dryRun bool) (*entity.SweepReport, error)

	// CreateMissingProfiles creates a profile for every user that lacks one and returns how many were created.
	CreateMissingProfiles(ctx context.Context) (int, error)

	// AuditFileIDs reports stored Telegram file ids that look unusable.
	AuditFileIDs(ctx context.Context) ([]entity.FileIDIssue, error)
}
