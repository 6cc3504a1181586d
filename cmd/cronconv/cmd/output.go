package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/solatis/cronconv/internal/cronexpr"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// print writes value in the selected output format. text renders the
// human-readable form.
func (c *cli) print(cmd *cobra.Command, value any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	switch c.output {
	case outputText:
		return text(w)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected text, json, yaml)", c.output)
	}
}

// expressionView is the structured output of an Expression.
type expressionView struct {
	Expression  string `json:"expression" yaml:"expression"`
	Period      string `json:"period" yaml:"period"`
	PeriodLabel string `json:"period_label" yaml:"period_label"`
	Minutes     []int  `json:"minutes,omitempty" yaml:"minutes,omitempty,flow"`
	Hours       []int  `json:"hours,omitempty" yaml:"hours,omitempty,flow"`
	MonthDays   []int  `json:"month_days,omitempty" yaml:"month_days,omitempty,flow"`
	Months      []int  `json:"months,omitempty" yaml:"months,omitempty,flow"`
	WeekDays    []int  `json:"week_days,omitempty" yaml:"week_days,omitempty,flow"`
}

func newExpressionView(converter *cronexpr.Converter, e cronexpr.Expression) expressionView {
	if e.IsZero() {
		return expressionView{}
	}
	f := e.Fields()
	return expressionView{
		Expression:  converter.Render(e),
		Period:      e.Period().String(),
		PeriodLabel: converter.Options().Locale.PeriodLabel(e.Period()),
		Minutes:     f.Minutes,
		Hours:       f.Hours,
		MonthDays:   f.MonthDays,
		Months:      f.Months,
		WeekDays:    f.WeekDays,
	}
}

func (v expressionView) writeText(w io.Writer) error {
	if v.Period == "" {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	fmt.Fprintf(w, "expression: %s\n", v.Expression)
	fmt.Fprintf(w, "period:     %s\n", v.PeriodLabel)
	for _, row := range []struct {
		name   string
		values []int
	}{
		{"minutes", v.Minutes},
		{"hours", v.Hours},
		{"month-days", v.MonthDays},
		{"months", v.Months},
		{"week-days", v.WeekDays},
	} {
		if row.values == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%-11s %s\n", row.name+":", joinInts(row.values)); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(values []int) string {
	out := make([]byte, 0, len(values)*3)
	for i, v := range values {
		if i > 0 {
			out = append(out, ',')
		}
		out = fmt.Appendf(out, "%d", v)
	}
	return string(out)
}
