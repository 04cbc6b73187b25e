package main

import (
	"bytes"
	"context"
	"testing"

	"arthurflix/internal/domain/entity"
	mockUsecase "arthurflix/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCommands(t *testing.T) (*commands, *mockUsecase.MockMaintenanceUsecase, *mockUsecase.MockMembershipUsecase, *bytes.Buffer) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	membership := mockUsecase.NewMockMembershipUsecase(t)
	out := &bytes.Buffer{}

	return &commands{
		maintenance: maintenance,
		membership:  membership,
		migrateDB:   func(context.Context) error { return nil },
		out:         out,
	}, maintenance, membership, out
}

func TestCommands_SweepTokens(t *testing.T) {
	tests := []struct {
		name   string
		dryRun bool
		want   string
	}{
		{name: "delete", want: "Deleted 2 expired direct tokens and 5 expired download tokens."},
		{name: "dry run", dryRun: true, want: "Would delete 2 expired direct tokens and 5 expired download tokens."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, maintenance, _, out := newTestCommands(t)
			maintenance.EXPECT().SweepExpiredTokens(mock.Anything, tt.dryRun).Return(&entity.SweepReport{
				ExpiredDirect:   2,
				ExpiredDownload: 5,
				ActiveDirect:    1,
				DryRun:          tt.dryRun,
			}, nil).Once()

			require.NoError(t, cmds.sweepTokens(context.Background(), tt.dryRun))
			assert.Contains(t, out.String(), tt.want)
			assert.Contains(t, out.String(), "Active: 1 direct, 0 download.")
		})
	}
}

func TestCommands_SweepTokens_Error(t *testing.T) {
	cmds, maintenance, _, _ := newTestCommands(t)
	maintenance.EXPECT().SweepExpiredTokens(mock.Anything, false).Return(nil, errors.New("db down")).Once()

	err := cmds.sweepTokens(context.Background(), false)

	assert.ErrorContains(t, err, "failed to sweep tokens")
}

func TestCommands_ProvisionKeys(t *testing.T) {
	cmds, _, membership, out := newTestCommands(t)
	membership.EXPECT().ProvisionKeys(mock.Anything, 2, "batch").Return([]*entity.MembershipKey{
		{Key: "AAAA"}, {Key: "BBBB"},
	}, nil).Once()

	require.NoError(t, cmds.provisionKeys(context.Background(), 2, "batch"))
	assert.Equal(t, "AAAA\nBBBB\n", out.String())
}

func TestCommands_CreateProfiles(t *testing.T) {
	cmds, maintenance, _, out := newTestCommands(t)
	maintenance.EXPECT().CreateMissingProfiles(mock.Anything).Return(3, nil).Once()

	require.NoError(t, cmds.createProfiles(context.Background()))
	assert.Equal(t, "Created 3 profiles.\n", out.String())
}

func TestCommands_CheckFileIDs(t *testing.T) {
	cmds, maintenance, _, out := newTestCommands(t)
	maintenance.EXPECT().AuditFileIDs(mock.Anything).Return([]entity.FileIDIssue{
		{Slug: "alpha", Quality: entity.QualityHD, FileID: "https://x", Problem: "looks like a URL"},
		{Slug: "show", Episode: 2, Quality: entity.QualitySD, FileID: "abc", Problem: "too short"},
	}, nil).Once()

	require.NoError(t, cmds.checkFileIDs(context.Background()))
	assert.Contains(t, out.String(), `alpha [HD]: looks like a URL ("https://x")`)
	assert.Contains(t, out.String(), `show episode 2 [SD]: too short ("abc")`)
	assert.Contains(t, out.String(), "2 suspicious file ids.")
}

func TestCommands_CheckFileIDs_Clean(t *testing.T) {
	cmds, maintenance, _, out := newTestCommands(t)
	maintenance.EXPECT().AuditFileIDs(mock.Anything).Return(nil, nil).Once()

	require.NoError(t, cmds.checkFileIDs(context.Background()))
	assert.Equal(t, "All file ids look valid.\n", out.String())
}

func TestCommands_Migrate(t *testing.T) {
	cmds, _, _, out := newTestCommands(t)
	cmds.migrateDB = func(context.Context) error { return errors.New("no db") }
	assert.Error(t, cmds.migrate(context.Background()))

	cmds.migrateDB = func(context.Context) error { return nil }
	require.NoError(t, cmds.migrate(context.Background()))
	assert.Contains(t, out.String(), "Schema is up to date.")
}

func TestRunSubcommand_Unknown(t *testing.T) {
	err := runSubcommand(context.Background(), "launch", nil)

	assert.ErrorContains(t, err, "unknown subcommand")
}
