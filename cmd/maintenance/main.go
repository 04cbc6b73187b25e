package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:         Create or update the database schema
// - sweep-tokens:    Delete expired download and direct tokens
// - provision-keys:  Create unassigned membership keys
// - create-profiles: Give every user without a profile an empty one
// - check-file-ids:  Report stored Telegram file ids that look unusable

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "migrate":
		if err := flag.NewFlagSet(name, flag.ExitOnError).Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse migrate flags")
		}

		return withCommands(ctx, func(cmds *commands) error { return cmds.migrate(ctx) })

	case "sweep-tokens":
		fs := flag.NewFlagSet(name, flag.ExitOnError)
		dryRun := fs.Bool("dry-run", false, "Only count expired tokens")
		if err := fs.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse sweep-tokens flags")
		}

		return withCommands(ctx, func(cmds *commands) error { return cmds.sweepTokens(ctx, *dryRun) })

	case "provision-keys":
		fs := flag.NewFlagSet(name, flag.ExitOnError)
		count := fs.Int("count", 1, "Number of keys to create")
		notes := fs.String("notes", "", "Note stored with every key")
		if err := fs.Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse provision-keys flags")
		}
		if *count < 1 {
			return errors.New("--count must be at least 1")
		}

		return withCommands(ctx, func(cmds *commands) error { return cmds.provisionKeys(ctx, *count, *notes) })

	case "create-profiles":
		if err := flag.NewFlagSet(name, flag.ExitOnError).Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse create-profiles flags")
		}

		return withCommands(ctx, func(cmds *commands) error { return cmds.createProfiles(ctx) })

	case "check-file-ids":
		if err := flag.NewFlagSet(name, flag.ExitOnError).Parse(args); err != nil {
			return errors.Wrap(err, "failed to parse check-file-ids flags")
		}

		return withCommands(ctx, func(cmds *commands) error { return cmds.checkFileIDs(ctx) })

	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func printUsage() {
	fmt.Println("Usage: maintenance <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate           Create or update the database schema")
	fmt.Println("  sweep-tokens      Delete expired tokens (-dry-run to only count)")
	fmt.Println("  provision-keys    Create membership keys (-count, -notes)")
	fmt.Println("  create-profiles   Create missing user profiles")
	fmt.Println("  check-file-ids    Report suspicious Telegram file ids")
	fmt.Println("")
	fmt.Println("Use 'maintenance <command> -h' for more information about a command.")
}
