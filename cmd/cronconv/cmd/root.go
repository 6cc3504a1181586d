package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/solatis/cronconv/internal/catalog"
	"github.com/solatis/cronconv/internal/core/config"
	"github.com/solatis/cronconv/internal/core/db"
	"github.com/solatis/cronconv/internal/core/logging"
	"github.com/solatis/cronconv/internal/cronexpr"
)

// Version is the cronconv release.
const Version = "0.1.0"

// cli holds the persistent flag values shared by every subcommand.
type cli struct {
	configFile string
	dbURL      string
	logLevel   string
	logFormat  string
	output     string
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "cronconv",
		Short: "Convert between cron expressions and structured recurrences",
		Long: `cronconv parses five-field cron expressions into a period and per-field
value sets, renders structured recurrences back into canonical cron text,
and keeps a catalog of named schedules.`,
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&c.dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "json", "log format (json, text)")
	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", outputText, "output format (text, json, yaml)")

	rootCmd.AddCommand(
		newParseCmd(c),
		newRenderCmd(c),
		newFormatCmd(c),
		newShortcutsCmd(c),
		newMigrateCmd(c),
		newScheduleCmd(c),
		newServeCmd(c),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly on cmd.
func (c *cli) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	if c.dbURL != "" {
		overrides["db.url"] = c.dbURL
	}
	for flag, key := range map[string]string{
		"humanize":     "converter.humanize",
		"allow-empty":  "converter.allow_empty",
		"shortcuts":    "converter.shortcuts",
		"leading-zero": "converter.leading_zero",
		"clock-format": "converter.clock_format",
		"locale":       "converter.locale_file",
		"host":         "server.host",
		"port":         "server.port",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		switch flag {
		case "humanize":
			overrides[key], _ = cmd.Flags().GetBool(flag)
		case "shortcuts", "leading-zero":
			overrides[key], _ = cmd.Flags().GetStringSlice(flag)
		case "port":
			overrides[key], _ = cmd.Flags().GetInt(flag)
		default:
			overrides[key] = f.Value.String()
		}
	}

	cfg, err := config.LoadConfigWith(c.configFile, overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// addConverterFlags registers the per-invocation converter overrides.
func addConverterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("humanize", false, "render month and week-day labels")
	cmd.Flags().String("allow-empty", "", "empty input policy (never, always, for-default-value)")
	cmd.Flags().StringSlice("shortcuts", nil, "enabled aliases, or all / none")
	cmd.Flags().StringSlice("leading-zero", nil, "zero-padded fields, or all / none")
	cmd.Flags().String("clock-format", "", "hour display (12-hour-clock, 24-hour-clock)")
	cmd.Flags().String("locale", "", "YAML locale file")
}

func (c *cli) newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	return logging.New(c.logLevel, c.logFormat, cmd.ErrOrStderr())
}

func newConverter(cfg *config.Config) (*cronexpr.Converter, error) {
	opts, err := cfg.Converter.Options()
	if err != nil {
		return nil, err
	}
	return cronexpr.NewConverter(opts), nil
}

// openCatalog connects to the configured database and loads the named
// queries. Callers close the returned connection.
func openCatalog(ctx context.Context, cfg *config.Config, converter *cronexpr.Converter) (*catalog.Store, *sqlx.DB, error) {
	database, err := db.Open(ctx, cfg.DB.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	statuses, err := db.MigrateStatus(ctx, database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to check migrations: %w", err)
	}
	for _, s := range statuses {
		if !s.Applied {
			database.Close()
			return nil, nil, fmt.Errorf("migration %s not applied - run 'cronconv migrate' first", s.ID)
		}
	}

	queries, err := db.LoadQueries(database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return catalog.NewStore(queries, converter), database, nil
}
