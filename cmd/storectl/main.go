package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:      Create or update the database schema
// - seed-menu:    Upsert the menu catalogue
// - status:       Print the store status
// - toggle:       Open or close the store
// - create-staff: Register a dashboard account

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	seedCmd := flag.NewFlagSet("seed-menu", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "JSON menu file (defaults to the built-in menu)")

	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	toggleCmd := flag.NewFlagSet("toggle", flag.ExitOnError)
	toggleBy := toggleCmd.String("by", "", "Actor recorded as updated_by")

	staffCmd := flag.NewFlagSet("create-staff", flag.ExitOnError)
	staffUsername := staffCmd.String("username", "", "Login name")
	staffPassword := staffCmd.String("password", "", "Password (8-72 characters)")
	staffRole := staffCmd.String("role", "staff", "Dashboard role: staff or manager")
	staffName := staffCmd.String("name", "", "Display name")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateCmd,
		Seed: seedFlags{
			cmd:  seedCmd,
			file: seedFile,
		},
		Status: statusCmd,
		Toggle: toggleFlags{
			cmd: toggleCmd,
			by:  toggleBy,
		},
		Staff: staffFlags{
			cmd:      staffCmd,
			username: staffUsername,
			password: staffPassword,
			role:     staffRole,
			name:     staffName,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate *flag.FlagSet
	Seed    seedFlags
	Status  *flag.FlagSet
	Toggle  toggleFlags
	Staff   staffFlags
}

type seedFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type toggleFlags struct {
	cmd *flag.FlagSet
	by  *string
}

type staffFlags struct {
	cmd      *flag.FlagSet
	username *string
	password *string
	role     *string
	name     *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse migrate flags")
		}

		return withApp(ctx, runMigrate)
	case "seed-menu":
		if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse seed-menu flags")
		}

		return withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
			return runSeedMenu(ctx, deps, *flags.Seed.file)
		})
	case "status":
		if err := flags.Status.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse status flags")
		}

		return withApp(ctx, runStatus)
	case "toggle":
		return handleToggle(ctx, flags)
	case "create-staff":
		return handleCreateStaff(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleToggle(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Toggle.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse toggle flags")
	}

	if *flags.Toggle.by == "" {
		return errors.New("--by flag is required for toggle command")
	}

	return withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
		return runToggle(ctx, deps, *flags.Toggle.by)
	})
}

func handleCreateStaff(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Staff.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse create-staff flags")
	}

	input := staffInput(flags.Staff)

	return withApp(ctx, func(ctx context.Context, deps *ctlDeps) error {
		return runCreateStaff(ctx, deps, input)
	})
}

func printUsage() {
	fmt.Println("Usage: storectl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate       Create or update the database schema")
	fmt.Println("  seed-menu     Upsert the menu catalogue")
	fmt.Println("  status        Print the store status")
	fmt.Println("  toggle        Open or close the store")
	fmt.Println("  create-staff  Register a dashboard account")
	fmt.Println("")
	fmt.Println("Use 'storectl <command> -h' for more information about a command.")
}
