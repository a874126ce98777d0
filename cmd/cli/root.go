// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bathtub-manager/internal/bathtub"
	"bathtub-manager/internal/config"
	"bathtub-manager/internal/editor"
	"bathtub-manager/internal/logger"
	"bathtub-manager/internal/store"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	configPath string
	dbPath     string
	verbose    bool

	search string
	id     int64
	list   bool
	update bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bathtub-manager",
		Short: "Bathtub database manager",
		Long: `Browse, search and edit the bathtub measurements stored by bathe.

Without a mode flag an interactive editor is started. The database defaults to
bathtubs.db in the current directory and can be set with --db or db_path in
~/.config/bathtub-manager/config.yaml.`,
		Example: `  bathtub-manager --list
  bathtub-manager --search polypex
  bathtub-manager --id 3
  bathtub-manager --update 3 liters 200
  bathtub-manager --db ~/tubs.db`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.update {
				if len(args) != 3 {
					return fmt.Errorf("--update takes exactly 3 arguments: <id> <field> <value>, got %d", len(args))
				}
				return nil
			}
			return cobra.NoArgs(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd, args)
		},
		ValidArgsFunction: completeUpdateArgs,
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database file path (default \"bathtubs.db\")")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default ~/.config/bathtub-manager/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&opts.search, "search", "", "search entries by name")
	flags.Int64Var(&opts.id, "id", 0, "show the entry with this ID")
	flags.BoolVar(&opts.list, "list", false, "list all entries")
	flags.BoolVar(&opts.update, "update", false, "update a field directly: --update <id> <field> <value>")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// setup resolves the configuration and starts logging.
func (o *rootOptions) setup() error {
	cfg, err := config.Resolve(o.overrides())
	if err != nil {
		return err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	logger.InitLogger(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile, Stderr: true})
	o.cfg = cfg
	return nil
}

// overrides maps the command-line flags onto config overrides; -v forces debug.
func (o *rootOptions) overrides() config.Overrides {
	ov := config.Overrides{ConfigPath: o.configPath, DBPath: o.dbPath}
	if o.verbose {
		ov.LogLevel = "debug"
	}
	return ov
}

func (o *rootOptions) run(ctx context.Context, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	s := store.New(o.cfg.DBPath)
	if err := s.Check(ctx); err != nil {
		return err
	}
	logger.Debug("Using database", "path", s.Path())

	switch {
	case o.update:
		return runUpdate(ctx, s, out, args)
	case cmd.Flags().Changed("search"):
		if strings.TrimSpace(o.search) == "" {
			return fmt.Errorf("%w: --search needs a non-empty term", bathtub.ErrMissingRequiredField)
		}
		return runQuery(out, func() ([]bathtub.Record, error) {
			return s.FindByName(ctx, o.search)
		})
	case cmd.Flags().Changed("id"):
		return runQuery(out, func() ([]bathtub.Record, error) {
			r, err := s.FindByID(ctx, o.id)
			if err != nil || r == nil {
				return nil, err
			}
			return []bathtub.Record{*r}, nil
		})
	case o.list:
		return runQuery(out, func() ([]bathtub.Record, error) {
			return s.List(ctx, store.OrderName)
		})
	default:
		return editor.New(s, cmd.InOrStdin(), out).Run(ctx)
	}
}

func runUpdate(ctx context.Context, s *store.Store, out io.Writer, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: entry ID must be an integer, got '%s'", bathtub.ErrInvalidValue, args[0])
	}
	field, value := args[1], args[2]

	if err := editor.ApplyUpdate(ctx, s, id, field, value); err != nil {
		return err
	}
	successColor.Fprintf(out, "Updated %s of entry %s\n", field, identifierColor.Sprint(id))
	return nil
}

// runQuery shows a spinner while query runs and prints the result table.
func runQuery(out io.Writer, query func() ([]bathtub.Record, error)) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Color("cyan")
	sp.Suffix = " Querying database..."
	sp.Start()
	records, err := query()
	sp.Stop()
	if err != nil {
		return err
	}

	editor.PrintRecords(out, records)
	if len(records) > 0 {
		statusColor.Fprintf(out, "\n%d entr%s\n", len(records), plural(len(records)))
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}

// RunCLI executes the bathtub-manager command and exits 1 on failure.
func RunCLI() {
	if err := execute(newRootCmd(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func execute(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		switch {
		case errors.Is(err, store.ErrStoreUnavailable):
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			fmt.Fprintln(cmd.ErrOrStderr(), "Run bathe first to create the database, or pass --db.")
		default:
			errorColor.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		logger.Debug("Command failed", "error", err)
	}
	return err
}
