package main

import (
	"context"
	"fmt"
	"io"

	"arthurflix/internal/usecase"

	"github.com/pkg/errors"
)

type commands struct {
	maintenance usecase.MaintenanceUsecase
	membership  usecase.MembershipUsecase
	migrateDB   func(context.Context) error
	out         io.Writer
}

func (c *commands) migrate(ctx context.Context) error {
	if err := c.migrateDB(ctx); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Schema is up to date.")

	return nil
}

func (c *commands) sweepTokens(ctx context.Context, dryRun bool) error {
	report, err := c.maintenance.SweepExpiredTokens(ctx, dryRun)
	if err != nil {
		return errors.Wrap(err, "failed to sweep tokens")
	}

	verb := "Deleted"
	if report.DryRun {
		verb = "Would delete"
	}
	fmt.Fprintf(c.out, "%s %d expired direct tokens and %d expired download tokens.\n",
		verb, report.ExpiredDirect, report.ExpiredDownload)
	fmt.Fprintf(c.out, "Active: %d direct, %d download.\n", report.ActiveDirect, report.ActiveDownload)

	return nil
}

func (c *commands) provisionKeys(ctx context.Context, count int, notes string) error {
	keys, err := c.membership.ProvisionKeys(ctx, count, notes)
	if err != nil {
		return errors.Wrap(err, "failed to provision keys")
	}

	for _, key := range keys {
		fmt.Fprintln(c.out, key.Key)
	}

	return nil
}

func (c *commands) createProfiles(ctx context.Context) error {
	created, err := c.maintenance.CreateMissingProfiles(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to create profiles")
	}
	fmt.Fprintf(c.out, "Created %d profiles.\n", created)

	return nil
}

func (c *commands) checkFileIDs(ctx context.Context) error {
	issues, err := c.maintenance.AuditFileIDs(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to audit file ids")
	}
	if len(issues) == 0 {
		fmt.Fprintln(c.out, "All file ids look valid.")

		return nil
	}

	for _, issue := range issues {
		where := issue.Slug
		if issue.Episode > 0 {
			where = fmt.Sprintf("%s episode %d", issue.Slug, issue.Episode)
		}
		fmt.Fprintf(c.out, "%s [%s]: %s (%q)\n", where, issue.Quality, issue.Problem, issue.FileID)
	}
	fmt.Fprintf(c.out, "%d suspicious file ids.\n", len(issues))

	return nil
}
