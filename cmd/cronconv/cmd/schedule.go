package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/solatis/cronconv/internal/catalog"
	"github.com/solatis/cronconv/internal/cronexpr"
	"github.com/solatis/cronconv/internal/types"
)

func newScheduleCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage the catalog of named schedules",
	}
	cmd.AddCommand(
		newScheduleAddCmd(c),
		newScheduleListCmd(c),
		newScheduleShowCmd(c),
		newScheduleRemoveCmd(c),
	)
	return cmd
}

// withCatalog runs fn against the configured catalog.
func (c *cli) withCatalog(cmd *cobra.Command, fn func(store *catalog.Store, converter *cronexpr.Converter) error) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}
	converter, err := newConverter(cfg)
	if err != nil {
		return err
	}
	store, database, err := openCatalog(cmd.Context(), cfg, converter)
	if err != nil {
		return err
	}
	defer database.Close()
	return fn(store, converter)
}

func writeSchedules(w io.Writer, schedules []types.Schedule) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEXPRESSION\tPERIOD\tCREATED")
	for _, s := range schedules {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Expression, s.Period, s.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

func newScheduleAddCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add NAME EXPRESSION",
		Short: "Validate an expression and store it under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			return c.withCatalog(cmd, func(store *catalog.Store, _ *cronexpr.Converter) error {
				s, err := store.Add(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				logger.Info("schedule added", "schedule_id", s.ID, "name", s.Name, "period", s.Period)
				return c.print(cmd, s, func(w io.Writer) error {
					return writeSchedules(w, []types.Schedule{*s})
				})
			})
		},
	}
	addConverterFlags(cmd)
	return cmd
}

func newScheduleListCmd(c *cli) *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(store *catalog.Store, _ *cronexpr.Converter) error {
				var schedules []types.Schedule
				var err error
				if period != "" {
					p, perr := cronexpr.ParsePeriod(period)
					if perr != nil {
						return perr
					}
					schedules, err = store.ListByPeriod(cmd.Context(), p)
				} else {
					schedules, err = store.List(cmd.Context())
				}
				if err != nil {
					return err
				}
				return c.print(cmd, schedules, func(w io.Writer) error {
					return writeSchedules(w, schedules)
				})
			})
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "only list schedules of this period")
	return cmd
}

// scheduleView is a stored schedule with its decoded value sets.
type scheduleView struct {
	types.Schedule `yaml:",inline"`
	Display        string         `json:"display" yaml:"display"`
	Decoded        expressionView `json:"decoded" yaml:"decoded"`
}

func newScheduleShowCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show a stored schedule and its decoded fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(store *catalog.Store, converter *cronexpr.Converter) error {
				s, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				e, err := store.Decode(s)
				if err != nil {
					return err
				}
				view := scheduleView{
					Schedule: *s,
					Display:  converter.Display(e),
					Decoded:  newExpressionView(converter, e),
				}
				return c.print(cmd, view, func(w io.Writer) error {
					fmt.Fprintf(w, "name:       %s\n", s.Name)
					fmt.Fprintf(w, "source:     %s\n", s.Source)
					fmt.Fprintf(w, "display:    %s\n", view.Display)
					return view.Decoded.writeText(w)
				})
			})
		},
	}
	addConverterFlags(cmd)
	return cmd
}

func newScheduleRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a stored schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := c.newLogger(cmd)
			if err != nil {
				return err
			}
			return c.withCatalog(cmd, func(store *catalog.Store, _ *cronexpr.Converter) error {
				if err := store.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				logger.Info("schedule removed", "name", args[0])
				return nil
			})
		},
	}
}
