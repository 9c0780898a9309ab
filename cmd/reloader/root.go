package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/reloader/dialect/sql"
	"github.com/syssam/reloader/internal/cli"
	"github.com/syssam/reloader/store"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	// Persistent flags
	cfgFile string
	driver  string
	source  string
	debug   bool
	stats   bool
	verbose int

	// Set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *slog.Logger
}

// Command group IDs
const (
	groupRecords = "records"
	groupData    = "data"
	groupUtility = "utility"
)

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "reloader",
		Short: "Cartridge reloading logbook",
		Long: `reloader - Cartridge reloading logbook

Reloader records casings, projectiles, powders, loads and ballistic tests in
SQLite, PostgreSQL or MySQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}
			return a.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover reloader.yaml)")
	flags.StringVar(&a.driver, "driver", "", "database driver: sqlite, postgres or mysql")
	flags.StringVar(&a.source, "database", "", "database source name")
	flags.BoolVar(&a.debug, "debug", false, "log every executed statement")
	flags.BoolVar(&a.stats, "stats", false, "report statement statistics")
	flags.CountVarP(&a.verbose, "verbose", "v", "increase verbosity (can be repeated)")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupRecords, Title: "Records:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)
	for _, c := range []*cobra.Command{newInitCmd(a), newListCmd(a), newDeleteCmd(a)} {
		c.GroupID = groupRecords
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{newImportCmd(a), newExportCmd(a)} {
		c.GroupID = groupData
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{newRenderCmd(a), newVersionCmd()} {
		c.GroupID = groupUtility
		rootCmd.AddCommand(c)
	}
	return rootCmd
}

// load reads the configuration, applies flags on top and installs the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, path, err := cli.LoadConfig(a.cfgFile)
	if err != nil {
		return cli.ConfigError("loading configuration", err)
	}
	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Database.Driver = a.driver
	}
	if flags.Changed("database") {
		cfg.Database.Source = a.source
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if flags.Changed("stats") {
		cfg.Stats = a.stats
	}
	if err := cfg.Validate(); err != nil {
		return cli.ConfigError("invalid configuration", err)
	}
	a.cfg, a.configPath = cfg, path

	level := slog.LevelWarn
	switch {
	case a.verbose >= 2 || cfg.Debug:
		level = slog.LevelDebug
	case a.verbose == 1 || cfg.Stats:
		level = slog.LevelInfo
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if path != "" {
		a.logger.Debug("loaded config", "path", path)
	}
	return nil
}

// open connects to the configured database. The returned func reports
// statistics, if enabled, and closes the connection.
func (a *app) open(ctx context.Context) (*store.Store, func(), error) {
	opts := []sql.Option{sql.WithLogger(a.logger)}
	if a.cfg.Debug {
		opts = append(opts, sql.WithDebug())
	}
	if a.cfg.Stats {
		opts = append(opts, sql.WithStats(
			sql.WithSlowThreshold(a.cfg.SlowThreshold),
			sql.WithSlowStatementLog(a.logger),
		))
	}
	db, err := sql.Open(ctx, a.cfg.Database.Driver, a.cfg.Database.Source, opts...)
	if err != nil {
		return nil, nil, cli.DBConnectError("opening database", err)
	}
	done := func() {
		if st := db.Stats(); st != nil {
			a.logger.Info("statement stats", "stats", st.Snapshot().String())
		}
		if err := db.Close(); err != nil {
			a.logger.Warn("closing database", "error", err)
		}
	}
	return store.New(db, a.logger), done, nil
}
