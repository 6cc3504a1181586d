package cronexpr

import (
	"errors"
	"reflect"
	"testing"

	"github.com/solatis/cronconv/internal/types"
)

func mustParse(t *testing.T, c *Converter, text string) Expression {
	t.Helper()
	e, err := c.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return e
}

func mustNew(t *testing.T, period Period, fields Fields) Expression {
	t.Helper()
	e, err := New(period, fields)
	if err != nil {
		t.Fatalf("New(%v) error = %v", period, err)
	}
	return e
}

func TestConverter_Parse(t *testing.T) {
	c := NewConverter(DefaultOptions())

	tests := []struct {
		expression string
		period     Period
		fields     Fields
	}{
		{"* * * * *", PeriodMinute, Fields{}},
		{"30 * * * *", PeriodHour, Fields{Minutes: []int{30}}},
		{"0 9,17 * * *", PeriodDay, Fields{Minutes: []int{0}, Hours: []int{9, 17}}},
		{"* 9 * * *", PeriodDay, Fields{Hours: []int{9}}},
		{"0 9 * * 1-5", PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{9}, WeekDays: []int{1, 2, 3, 4, 5}}},
		{"0 9 * * MON-FRI", PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{9}, WeekDays: []int{1, 2, 3, 4, 5}}},
		{"0 9 1,15 * *", PeriodMonth, Fields{Minutes: []int{0}, Hours: []int{9}, MonthDays: []int{1, 15}}},
		{"0 9 1 * 7", PeriodMonth, Fields{Minutes: []int{0}, Hours: []int{9}, MonthDays: []int{1}, WeekDays: []int{0}}},
		{"0 9 1 JAN,jul *", PeriodYear, Fields{Minutes: []int{0}, Hours: []int{9}, MonthDays: []int{1}, Months: []int{1, 7}}},
		{"*/15 0-6 1,15 * 1-5", PeriodMonth, Fields{Minutes: []int{0, 15, 30, 45}, Hours: []int{0, 1, 2, 3, 4, 5, 6}, MonthDays: []int{1, 15}, WeekDays: []int{1, 2, 3, 4, 5}}},
		{"*/1 */1 * * *", PeriodMinute, Fields{}},
		{"@daily", PeriodDay, Fields{Minutes: []int{0}, Hours: []int{0}}},
		{"@midnight", PeriodDay, Fields{Minutes: []int{0}, Hours: []int{0}}},
		{"@hourly", PeriodHour, Fields{Minutes: []int{0}}},
		{"@weekly", PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{0}, WeekDays: []int{0}}},
		{"@monthly", PeriodMonth, Fields{Minutes: []int{0}, Hours: []int{0}, MonthDays: []int{1}}},
		{"@yearly", PeriodYear, Fields{Minutes: []int{0}, Hours: []int{0}, MonthDays: []int{1}, Months: []int{1}}},
		{"@annually", PeriodYear, Fields{Minutes: []int{0}, Hours: []int{0}, MonthDays: []int{1}, Months: []int{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got := mustParse(t, c, tt.expression)
			if got.Period() != tt.period {
				t.Errorf("Period() = %v, want %v", got.Period(), tt.period)
			}
			want := mustNew(t, tt.period, tt.fields)
			if !got.Equal(want) {
				t.Errorf("Parse(%q) fields = %+v, want %+v", tt.expression, got.Fields(), tt.fields)
			}
		})
	}
}

func TestConverter_ParseInvalid(t *testing.T) {
	c := NewConverter(DefaultOptions())

	for _, expression := range []string{
		"60 * * * *",
		"5,abc 9 * * *",
		"* * * *",
		"* * * * * *",
		"0 24 * * *",
		"0 0 0 * *",
		"0 0 * 13 *",
		"0 0 * * 8",
		"*/0 * * * *",
		"0 0 * * MONDAY",
		"@reboot",
		"@daily ",
		"@DAILY",
		"   ",
	} {
		t.Run(expression, func(t *testing.T) {
			got, err := c.Parse(expression)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", expression, got)
			}
			if !errors.Is(err, types.ErrInvalidExpression) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidExpression", expression, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error type = %T, want *ParseError", expression, err)
			}
			if pe.Kind != InvalidExpression {
				t.Errorf("Kind = %q, want %q", pe.Kind, InvalidExpression)
			}
			if pe.Input != expression {
				t.Errorf("Input = %q, want %q", pe.Input, expression)
			}
			if pe.Message != DefaultErrorInvalidCron {
				t.Errorf("Message = %q, want %q", pe.Message, DefaultErrorInvalidCron)
			}
			if !got.IsZero() {
				t.Errorf("Parse(%q) returned partial value %+v", expression, got.Fields())
			}
		})
	}
}

func TestConverter_EmptyPolicy(t *testing.T) {
	tests := []struct {
		policy      AllowEmpty
		wantDefault bool
		wantLater   bool
	}{
		{AllowEmptyForDefault, true, false},
		{AllowEmptyNever, false, false},
		{AllowEmptyAlways, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.AllowEmpty = tt.policy
			c := NewConverter(opts)

			e, err := c.ParseDefault("")
			if (err == nil) != tt.wantDefault {
				t.Errorf("ParseDefault(\"\") error = %v, want accepted=%v", err, tt.wantDefault)
			}
			if err == nil && !e.IsZero() {
				t.Errorf("ParseDefault(\"\") = %+v, want zero Expression", e)
			}

			_, err = c.Parse("")
			if (err == nil) != tt.wantLater {
				t.Errorf("Parse(\"\") error = %v, want accepted=%v", err, tt.wantLater)
			}
		})
	}
}

func TestConverter_Shortcuts(t *testing.T) {
	t.Run("reboot with all shortcuts", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Shortcuts = AllShortcuts()
		c := NewConverter(opts)

		e := mustParse(t, c, "@reboot")
		if e.Period() != PeriodReboot {
			t.Errorf("Period() = %v, want reboot", e.Period())
		}
		if !reflect.DeepEqual(e.Fields(), Fields{}) {
			t.Errorf("Fields() = %+v, want none", e.Fields())
		}
		if got := c.Render(e); got != RebootAlias {
			t.Errorf("Render() = %q, want %q", got, RebootAlias)
		}
	})

	t.Run("reboot readable only when enabled", func(t *testing.T) {
		reboot := mustNew(t, PeriodReboot, Fields{})

		c := NewConverter(DefaultOptions())
		if err := c.CheckReadable(reboot); !errors.Is(err, types.ErrInvalidFields) {
			t.Errorf("CheckReadable(reboot) error = %v, want ErrInvalidFields", err)
		}
		if _, err := c.Parse(c.Render(reboot)); err == nil {
			t.Error("Parse(Render(reboot)) = nil error under default shortcuts, want error")
		}
		if err := c.CheckReadable(mustNew(t, PeriodHour, Fields{Minutes: []int{5}})); err != nil {
			t.Errorf("CheckReadable(hour) error = %v, want nil", err)
		}

		opts := DefaultOptions()
		opts.Shortcuts = AllShortcuts()
		if err := NewConverter(opts).CheckReadable(reboot); err != nil {
			t.Errorf("CheckReadable(reboot) error = %v with all shortcuts, want nil", err)
		}
	})

	t.Run("no shortcuts", func(t *testing.T) {
		opts := DefaultOptions()
		opts.Shortcuts = NoShortcuts()
		c := NewConverter(opts)
		if _, err := c.Parse("@daily"); err == nil {
			t.Error("Parse(@daily) = nil error, want error")
		}
	})

	t.Run("explicit subset", func(t *testing.T) {
		policy, err := OnlyShortcuts("@hourly", RebootAlias)
		if err != nil {
			t.Fatalf("OnlyShortcuts() error = %v", err)
		}
		opts := DefaultOptions()
		opts.Shortcuts = policy
		c := NewConverter(opts)

		if e := mustParse(t, c, "@hourly"); e.Period() != PeriodHour {
			t.Errorf("Parse(@hourly) period = %v, want hour", e.Period())
		}
		if e := mustParse(t, c, "@reboot"); e.Period() != PeriodReboot {
			t.Errorf("Parse(@reboot) period = %v, want reboot", e.Period())
		}
		if _, err := c.Parse("@daily"); err == nil {
			t.Error("Parse(@daily) = nil error, want error")
		}
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		if _, err := OnlyShortcuts("@fortnightly"); err == nil {
			t.Error("OnlyShortcuts(@fortnightly) = nil error, want error")
		}
	})

	t.Run("table order", func(t *testing.T) {
		table := Shortcuts()
		if table[0].Name != RebootAlias || !table[0].Reboot {
			t.Errorf("Shortcuts()[0] = %+v, want reboot first", table[0])
		}
		table[0].Name = "mutated"
		if Shortcuts()[0].Name != RebootAlias {
			t.Error("Shortcuts() exposes internal table")
		}
	})
}

func TestConverter_Render(t *testing.T) {
	plain := NewConverter(DefaultOptions())
	humanOpts := DefaultOptions()
	humanOpts.Humanize = true
	humanOpts.LeadingZero = LeadingZeroAll()
	humanOpts.ClockFormat = Clock12Hour
	human := NewConverter(humanOpts)

	tests := []struct {
		name   string
		period Period
		fields Fields
		plain  string
		human  string
	}{
		{"every minute", PeriodMinute, Fields{}, "* * * * *", "* * * * *"},
		{"hourly wildcard minute", PeriodHour, Fields{}, "* * * * *", "* * * * *"},
		{"quarter hours", PeriodHour, Fields{Minutes: []int{0, 15, 30, 45}}, "*/15 * * * *", "*/15 * * * *"},
		{"twice a day", PeriodDay, Fields{Minutes: []int{0}, Hours: []int{9, 17}}, "0 9,17 * * *", "0 9,17 * * *"},
		{"weekdays", PeriodWeek, Fields{Minutes: []int{30}, Hours: []int{8}, WeekDays: []int{1, 2, 3, 4, 5}}, "30 8 * * 1-5", "30 8 * * MON-FRI"},
		{"weekend collapses to step", PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{10}, WeekDays: []int{0, 6}}, "0 10 * * */6", "0 10 * * */6"},
		{"long weekend", PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{10}, WeekDays: []int{0, 5, 6}}, "0 10 * * 0,5-6", "0 10 * * SUN,FRI-SAT"},
		{"monthly", PeriodMonth, Fields{Minutes: []int{0}, Hours: []int{0}, MonthDays: []int{1, 2, 3, 4, 8}}, "0 0 1-4,8 * *", "0 0 1-4,8 * *"},
		{"yearly", PeriodYear, Fields{Minutes: []int{0}, Hours: []int{0}, MonthDays: []int{1}, Months: []int{1, 7}}, "0 0 1 1,7 *", "0 0 1 JAN,JUL *"},
		{"reboot", PeriodReboot, Fields{}, "@reboot", "@reboot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustNew(t, tt.period, tt.fields)
			if got := plain.Render(e); got != tt.plain {
				t.Errorf("Render() = %q, want %q", got, tt.plain)
			}
			if got := human.Render(e); got != tt.human {
				t.Errorf("humanized Render() = %q, want %q", got, tt.human)
			}
		})
	}

	if got := plain.Render(Expression{}); got != "" {
		t.Errorf("Render(zero) = %q, want empty", got)
	}
}

func TestConverter_Display(t *testing.T) {
	opts := DefaultOptions()
	opts.Humanize = true
	opts.LeadingZero = LeadingZeroFor(FieldMinute)
	opts.ClockFormat = Clock12Hour
	c := NewConverter(opts)

	e := mustParse(t, c, "5 9,13 * * 1")
	if got, want := c.Display(e), "05 9AM,1PM * * MON"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got, want := c.FormatField([]int{0, 12}, FieldHour), "*/12"; got != want {
		t.Errorf("FormatField() = %q, want %q", got, want)
	}
	if got, want := c.FormatField([]int{0}, FieldHour), "12AM"; got != want {
		t.Errorf("FormatField() = %q, want %q", got, want)
	}
}

func TestConverter_HumanizedRoundTrip(t *testing.T) {
	opts := DefaultOptions()
	opts.Humanize = true
	c := NewConverter(opts)

	e := mustNew(t, PeriodWeek, Fields{Minutes: []int{0}, Hours: []int{0}, WeekDays: []int{0, 1}})
	text := c.Render(e)
	if text != "0 0 * * SUN-MON" {
		t.Fatalf("Render() = %q, want %q", text, "0 0 * * SUN-MON")
	}
	back := mustParse(t, c, text)
	if !reflect.DeepEqual(back.Field(FieldWeekDay), []int{0, 1}) {
		t.Errorf("week-days after round trip = %v, want [0 1]", back.Field(FieldWeekDay))
	}
}

func TestConverter_Locale(t *testing.T) {
	opts := DefaultOptions()
	opts.Locale = Locale{
		ErrorInvalidCron: "Expression cron invalide",
		WeekDayLabels:    [7]string{"DIM", "LUN", "MAR", "MER", "JEU", "VEN", "SAM"},
	}
	opts.Humanize = true
	c := NewConverter(opts)

	e := mustParse(t, c, "0 9 * * LUN-VEN")
	if got, want := e.Field(FieldWeekDay), []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("week-days = %v, want %v", got, want)
	}
	if got, want := c.Render(e), "0 9 * * LUN-VEN"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	// Month labels fall back to English.
	if e := mustParse(t, c, "0 9 1 FEB *"); !reflect.DeepEqual(e.Field(FieldMonth), []int{2}) {
		t.Errorf("months = %v, want [2]", e.Field(FieldMonth))
	}

	_, err := c.Parse("0 9 * * MON")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(MON) error = %v, want *ParseError", err)
	}
	if pe.Message != "Expression cron invalide" {
		t.Errorf("Message = %q, want localized message", pe.Message)
	}
}
