// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Command sqlitemgr is an interactive front end for a SQLite database.
//
// With no subcommand it shows a menu of table and row operations. The
// tables, columns, read and query subcommands run one operation against
// --db and exit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdhender/sqlitemgr"
	"github.com/mdhender/sqlitemgr/internal/config"
	"github.com/mdhender/sqlitemgr/internal/console"
	"github.com/mdhender/sqlitemgr/internal/logging"
)

// CLI flags
var (
	configPath string
	dbPath     string
	strict     bool
	verbosity  int
	logFormat  string
	logFile    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlitemgr",
		Short:         "sqlitemgr - SQLite table and row manager",
		Long:          `sqlitemgr connects to a SQLite database and lets you create, inspect and edit its tables from a menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "SQLite database path, or :memory: (or set SQLITEMGR_DATABASE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Report failures as errors instead of logging them")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console, text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this rotating file")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "tables",
			Short: "List the tables in the database",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withManager(cmd, func(ctx context.Context, m *sqlitemgr.Manager) error {
					names, err := m.ListTableNames(ctx)
					if err != nil {
						return err
					}
					for _, name := range names {
						fmt.Fprintln(cmd.OutOrStdout(), name)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "columns <table>",
			Short: "List the columns of a table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withManager(cmd, func(ctx context.Context, m *sqlitemgr.Manager) error {
					cols, err := m.DescribeTable(ctx, args[0])
					if err != nil {
						return err
					}
					for _, c := range cols {
						fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Name, c.Type)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "read <table>",
			Short: "Print every row of a table",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withManager(cmd, func(ctx context.Context, m *sqlitemgr.Manager) error {
					rows, err := m.ReadTable(ctx, args[0])
					if err != nil {
						return err
					}
					return printRows(cmd.OutOrStdout(), rows)
				})
			},
		},
		&cobra.Command{
			Use:   "query <sql>",
			Short: "Run a statement and print any rows it returns",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withManager(cmd, func(ctx context.Context, m *sqlitemgr.Manager) error {
					rows, err := m.CustomQuery(ctx, strings.Join(args, " "))
					if err != nil {
						return err
					}
					return printRows(cmd.OutOrStdout(), rows)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "sqlitemgr %s\n", sqlitemgr.Version())
			},
		},
	)

	return rootCmd
}

// loadConfig resolves the configuration file, the environment, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Database.Path = dbPath
	}
	if flags.Changed("strict") {
		cfg.Database.Strict = strict
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}
	if flags.Changed("log-file") {
		cfg.Logging.File.Path = logFile
	}
	switch {
	case verbosity >= 2:
		cfg.Logging.Level = "debug"
	case verbosity == 1:
		cfg.Logging.Level = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup builds the logger and the manager configuration.
func setup(cmd *cobra.Command) (*config.Config, *logging.Logger, sqlitemgr.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, sqlitemgr.Config{}, err
	}
	logger, err := logging.New(cfg.Logging, fmt.Sprint(sqlitemgr.Version()))
	if err != nil {
		return nil, nil, sqlitemgr.Config{}, fmt.Errorf("logging: %w", err)
	}
	mcfg := sqlitemgr.Config{
		Strict:      cfg.Database.Strict,
		Logger:      logger.Logger,
		BusyTimeout: cfg.Database.BusyTimeout,
	}
	return cfg, logger, mcfg, nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, logger, mcfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mgr := sqlitemgr.New(mcfg)
	logger.Info("starting menu", "strict", mcfg.Strict)

	if cfg.Database.Path != "" {
		ok, err := mgr.Connect(ctx, cfg.Database.Path)
		if err != nil {
			return err
		} else if !ok {
			return mgr.LastErr()
		}
		fmt.Fprintln(cmd.OutOrStdout(), mgr)
	}

	return console.NewSession(mgr, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
}

// withManager runs fn against the configured database. One-shot commands
// are always strict so that failures reach the exit status.
func withManager(cmd *cobra.Command, fn func(ctx context.Context, m *sqlitemgr.Manager) error) error {
	cfg, logger, mcfg, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	if cfg.Database.Path == "" {
		return fmt.Errorf("no database given: use --db or set SQLITEMGR_DATABASE_PATH")
	}
	mcfg.Strict = true

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return sqlitemgr.Use(ctx, mcfg, cfg.Database.Path, func(m *sqlitemgr.Manager) error {
		return fn(ctx, m)
	})
}

func printRows(w io.Writer, rows []sqlitemgr.Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
