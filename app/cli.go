// Package app is the main cmd app
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kranthi46/Library-management/config"
	"github.com/kranthi46/Library-management/logger"
	"github.com/kranthi46/Library-management/repo"
	"github.com/kranthi46/Library-management/seed"
	"github.com/kranthi46/Library-management/service"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

func CLI(args []string) int {
	app := &appEnv{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	return app.execute(args)
}

type appEnv struct {
	config  *config.Config
	storage repo.Repository
	service *service.Service

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// usageError marks bad flags and arguments. They exit with status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func (app *appEnv) execute(args []string) int {
	cmd := app.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(app.in)
	cmd.SetOut(app.out)
	cmd.SetErr(app.errOut)

	err := cmd.Execute()
	app.close()

	var uErr usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uErr):
		fmt.Fprintln(app.errOut, err)
		fmt.Fprintln(app.errOut, "Run 'libman --help' for usage.")
		return 2
	default:
		logger.Error("Runtime error", "error", err)
		return 1
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

func (app *appEnv) rootCmd() *cobra.Command {
	// Load default config
	app.config = config.Load()

	root := &cobra.Command{
		Use:           "libman",
		Short:         "Manage a small in-memory book catalog from the console",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(app.config.LogLevel)
			switch app.config.Store.Backend {
			case config.StoreMemory, config.StoreSQLite:
				return nil
			default:
				return usageError{fmt.Errorf("unknown store %q, want %s or %s",
					app.config.Store.Backend, config.StoreMemory, config.StoreSQLite)}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd.Context()); err != nil {
				return err
			}
			return NewMenu(app.service, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	// CLI flags override environment variables
	fl := root.PersistentFlags()
	fl.StringVar(&app.config.Store.Backend, "store", app.config.Store.Backend, "catalog store: memory or sqlite")
	fl.StringSliceVar(&app.config.Seed.Paths, "seed", app.config.Seed.Paths, "JSON or XML file to load at startup (repeatable)")
	fl.StringVar(&app.config.LogLevel, "log-level", app.config.LogLevel, "debug, info, warn or error")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(app.listCmd(), versionCmd())
	return root
}

func (app *appEnv) listCmd() *cobra.Command {
	var hideQuantity bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the seeded catalog and exit",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.open(cmd.Context()); err != nil {
				return err
			}
			books, err := app.service.ListBooks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, newView(out).books(books, !hideQuantity))
			return nil
		},
	}
	cmd.Flags().BoolVar(&hideQuantity, "hide-quantity", false, "leave the stock level out of each book")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "libman", version)
		},
	}
}

// open connects the configured store and loads the seed files into it.
func (app *appEnv) open(ctx context.Context) error {
	switch app.config.Store.Backend {
	case config.StoreSQLite:
		storage, err := repo.GetStorage(app.config.Store)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		app.storage = storage
	default:
		app.storage = repo.NewMemory()
	}
	app.service = service.New(app.storage)

	if err := app.service.Ping(ctx); err != nil {
		return err
	}

	if len(app.config.Seed.Paths) == 0 {
		return nil
	}
	books, err := seed.LoadFiles(ctx, app.config.Seed.Paths...)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		logger.Warn("Seed files contained no books", "files", app.config.Seed.Paths)
	}
	if _, err := app.service.Import(ctx, books); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	logger.Info("Catalog seeded", "files", len(app.config.Seed.Paths), "books", len(books))
	return nil
}

func (app *appEnv) close() {
	if app.storage == nil {
		return
	}
	if err := app.storage.Close(); err != nil {
		logger.Error("Error closing storage", "error", err)
	}
	app.storage = nil
}
