package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solatis/cronconv/internal/core/db"
)

func newMigrateCmd(c *cli) *cobra.Command {
	var statusOnly bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending catalog migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}

			database, err := db.Open(ctx, cfg.DB.URL)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer database.Close()

			if !statusOnly {
				ran, err := db.MigrateUp(ctx, database)
				for _, id := range ran {
					logger.Info("migration applied", "migration_id", id)
				}
				if err != nil {
					return err
				}
			}

			statuses, err := db.MigrateStatus(ctx, database)
			if err != nil {
				return err
			}
			return c.print(cmd, statuses, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				fmt.Fprintln(tw, "MIGRATION\tAPPLIED\tAPPLIED AT")
				for _, s := range statuses {
					appliedAt := "-"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
					}
					fmt.Fprintf(tw, "%s\t%t\t%s\n", s.ID, s.Applied, appliedAt)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&statusOnly, "status", false, "report migration status without applying")
	return cmd
}
