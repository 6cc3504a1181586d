package cronexpr

import "testing"

func TestSerializeField_Compression(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		kind   FieldKind
		want   string
	}{
		{"nil is wildcard", nil, FieldMinute, "*"},
		{"empty is wildcard", []int{}, FieldMinute, "*"},
		{"single value", []int{5}, FieldMinute, "5"},
		{"range and single", []int{1, 2, 3, 4, 8}, FieldMonthDay, "1-4,8"},
		{"full domain stays a range", seq(0, 59, 1), FieldMinute, "0-59"},
		{"quarter hours", []int{0, 15, 30, 45}, FieldMinute, "*/15"},
		{"ten minutes", []int{0, 10, 20, 30, 40, 50}, FieldMinute, "*/10"},
		{"two values", []int{0, 30}, FieldMinute, "*/30"},
		{"half days", []int{0, 12}, FieldHour, "*/12"},
		{"short progression keeps list", []int{0, 15, 30}, FieldMinute, "0,15,30"},
		{"progression without zero keeps list", []int{15, 30, 45}, FieldMinute, "15,30,45"},
		{"even month-days", seq(2, 30, 2), FieldMonthDay, "*/2"},
		{"quarterly months", []int{3, 6, 9, 12}, FieldMonth, "*/3"},
		{"even week-days", []int{0, 2, 4, 6}, FieldWeekDay, "*/2"},
		{"odd week-days", []int{1, 3, 5}, FieldWeekDay, "1,3,5"},
		{"range breaks progression", []int{0, 15, 16, 30, 45}, FieldMinute, "0,15-16,30,45"},
		{"month-day step four never collapses", []int{4, 8, 12, 16, 20, 24, 28}, FieldMonthDay, "4,8,12,16,20,24,28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SerializeField(tt.values, tt.kind, Options{})
			if got != tt.want {
				t.Errorf("SerializeField(%v, %s) = %q, want %q", tt.values, tt.kind, got, tt.want)
			}
		})
	}
}

func TestSerializeField_Formatting(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		kind   FieldKind
		opts   Options
		want   string
	}{
		{"humanized week-days", []int{0, 1}, FieldWeekDay, Options{Humanize: true}, "SUN-MON"},
		{"humanized week-day list", []int{1, 3, 5}, FieldWeekDay, Options{Humanize: true}, "MON,WED,FRI"},
		{"humanized months", []int{1, 2, 3, 6}, FieldMonth, Options{Humanize: true}, "JAN-MAR,JUN"},
		{"humanize ignores hours", []int{1}, FieldHour, Options{Humanize: true}, "1"},
		{"humanized step stays numeric", []int{3, 6, 9, 12}, FieldMonth, Options{Humanize: true}, "*/3"},
		{"leading zero everywhere", []int{5}, FieldMonthDay, Options{LeadingZero: LeadingZeroAll()}, "05"},
		{"leading zero for listed kind", []int{5, 10}, FieldMonthDay, Options{LeadingZero: LeadingZeroFor(FieldMonthDay)}, "05,10"},
		{"leading zero not for other kinds", []int{5}, FieldHour, Options{LeadingZero: LeadingZeroFor(FieldMonthDay)}, "5"},
		{"humanize wins over leading zero", []int{1}, FieldMonth, Options{Humanize: true, LeadingZero: LeadingZeroAll()}, "JAN"},
		{"leading zero months", []int{1}, FieldMonth, Options{LeadingZero: LeadingZeroAll()}, "01"},
		{"24-hour clock hours", []int{5}, FieldHour, Options{ClockFormat: Clock24Hour}, "05"},
		{"24-hour clock minutes", []int{7}, FieldMinute, Options{ClockFormat: Clock24Hour}, "07"},
		{"24-hour clock month-days", []int{5}, FieldMonthDay, Options{ClockFormat: Clock24Hour}, "5"},
		{"12-hour morning", []int{9}, FieldHour, Options{ClockFormat: Clock12Hour}, "9AM"},
		{"12-hour midnight", []int{0}, FieldHour, Options{ClockFormat: Clock12Hour}, "12AM"},
		{"12-hour noon", []int{12}, FieldHour, Options{ClockFormat: Clock12Hour}, "12PM"},
		{"12-hour afternoon", []int{13}, FieldHour, Options{ClockFormat: Clock12Hour}, "1PM"},
		{"12-hour with leading zero", []int{13}, FieldHour, Options{ClockFormat: Clock12Hour, LeadingZero: LeadingZeroAll()}, "01PM"},
		{"12-hour range", []int{9, 10, 11, 12}, FieldHour, Options{ClockFormat: Clock12Hour}, "9AM-12PM"},
		{"12-hour leaves minutes alone", []int{5}, FieldMinute, Options{ClockFormat: Clock12Hour}, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SerializeField(tt.values, tt.kind, tt.opts)
			if got != tt.want {
				t.Errorf("SerializeField(%v, %s) = %q, want %q", tt.values, tt.kind, got, tt.want)
			}
		})
	}
}

func TestCompress(t *testing.T) {
	runs := compress([]int{1, 2, 3, 7, 9, 10})
	want := []run{{1, 3}, {7, 7}, {9, 10}}
	if len(runs) != len(want) {
		t.Fatalf("len(compress()) = %d, want %d", len(runs), len(want))
	}
	for i := range want {
		if runs[i] != want[i] {
			t.Errorf("compress()[%d] = %v, want %v", i, runs[i], want[i])
		}
	}
}

// seq returns from, from+step, ... up to and including to.
func seq(from, to, step int) []int {
	var out []int
	for v := from; v <= to; v += step {
		out = append(out, v)
	}
	return out
}
