package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solatis/cronconv/internal/cronexpr"
)

func newParseCmd(c *cli) *cobra.Command {
	var asDefault bool
	cmd := &cobra.Command{
		Use:   "parse EXPRESSION",
		Short: "Parse a cron expression into its period and value sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			parse := converter.Parse
			if asDefault {
				parse = converter.ParseDefault
			}
			e, err := parse(args[0])
			if err != nil {
				return err
			}

			view := newExpressionView(converter, e)
			return c.print(cmd, view, view.writeText)
		},
	}
	cmd.Flags().BoolVar(&asDefault, "default", false, "treat the input as an editor default value")
	addConverterFlags(cmd)
	return cmd
}

func newRenderCmd(c *cli) *cobra.Command {
	var period string
	values := make(map[cronexpr.FieldKind]*[]int, len(cronexpr.FieldKinds))

	cmd := &cobra.Command{
		Use:   "render --period PERIOD [--minutes N,...] [--hours N,...] ...",
		Short: "Render a period and value sets as a canonical cron expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			p, err := cronexpr.ParsePeriod(period)
			if err != nil {
				return err
			}
			var fields cronexpr.Fields
			for kind, v := range values {
				fields.Set(kind, *v)
			}
			e, err := cronexpr.New(p, fields)
			if err != nil {
				return err
			}
			if err := converter.CheckReadable(e); err != nil {
				return err
			}

			view := newExpressionView(converter, e)
			return c.print(cmd, view, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, view.Expression)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&period, "period", "", "recurrence period (reboot, minute, hour, day, week, month, year)")
	cmd.MarkFlagRequired("period")
	for _, kind := range cronexpr.FieldKinds {
		v := new([]int)
		values[kind] = v
		cmd.Flags().IntSliceVar(v, kind.String(), nil, fmt.Sprintf("%s values", kind))
	}
	addConverterFlags(cmd)
	return cmd
}

// formatView is the structured output of the format command.
type formatView struct {
	Display string            `json:"display" yaml:"display"`
	Period  string            `json:"period" yaml:"period"`
	Fields  map[string]string `json:"fields" yaml:"fields"`
}

func newFormatCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format EXPRESSION",
		Short: "Display a cron expression with labels, leading zeros and clock format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			e, err := converter.Parse(args[0])
			if err != nil {
				return err
			}

			view := formatView{
				Display: converter.Display(e),
				Fields:  make(map[string]string, len(cronexpr.FieldKinds)),
			}
			if !e.IsZero() {
				view.Period = converter.Options().Locale.PeriodLabel(e.Period())
			}
			for _, kind := range cronexpr.FieldKinds {
				view.Fields[kind.String()] = converter.FormatField(e.Field(kind), kind)
			}
			return c.print(cmd, view, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, view.Display)
				return err
			})
		},
	}
	addConverterFlags(cmd)
	return cmd
}

// shortcutView is one row of the shortcuts command.
type shortcutView struct {
	Name      string `json:"name" yaml:"name"`
	Expansion string `json:"expansion" yaml:"expansion"`
	Enabled   bool   `json:"enabled" yaml:"enabled"`
}

func newShortcutsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "List the @ aliases and whether the configuration enables them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			converter, err := newConverter(cfg)
			if err != nil {
				return err
			}

			policy := converter.Options().Shortcuts
			var rows []shortcutView
			for _, s := range cronexpr.Shortcuts() {
				expansion := s.Expansion
				if s.Reboot {
					expansion = "(at startup)"
				}
				rows = append(rows, shortcutView{Name: s.Name, Expansion: expansion, Enabled: policy.Enabled(s.Name)})
			}

			return c.print(cmd, rows, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
				fmt.Fprintln(tw, "NAME\tEXPANSION\tENABLED")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%t\n", r.Name, r.Expansion, r.Enabled)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringSlice("shortcuts", nil, "enabled aliases, or all / none")
	return cmd
}
