package focus

import (
	"testing"
	"time"

	"github.com/focusly/todo/internal/asana"
)

func TestParseWeek(t *testing.T) {
	week, err := ParseWeek(asana.Section{GID: "1", Name: "Daily Focuses (2023-06-05 to 2023-06-11)"})
	if err != nil {
		t.Fatalf("ParseWeek: %v", err)
	}
	if week.From.String() != "2023-06-05" || week.To.String() != "2023-06-11" {
		t.Errorf("week = %v", week)
	}

	for _, name := range []string{
		"Daily Focuses",
		"Daily Focuses (2023-06-05)",
		"Daily Focuses (05/06/2023 to 11/06/2023)",
		"Weekly Focuses (2023-06-05 to 2023-06-11)",
		"Daily Focuses (2023-06-05 to 2023-06-11) extra",
	} {
		if _, err := ParseWeek(asana.Section{GID: "1", Name: name}); err == nil {
			t.Errorf("ParseWeek(%q): expected error", name)
		}
	}
}

func TestWeekContains(t *testing.T) {
	week, err := ParseWeek(asana.Section{GID: "1", Name: "Daily Focuses (2023-06-05 to 2023-06-11)"})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		date string
		want bool
	}{
		{"2023-06-04", false},
		{"2023-06-05", true},
		{"2023-06-08", true},
		{"2023-06-11", true},
		{"2023-06-12", false},
	}
	for _, tt := range tests {
		date, err := asana.ParseDate(tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := week.Contains(date); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		date, monday, sunday string
	}{
		{"2023-06-05", "2023-06-05", "2023-06-11"}, // a Monday
		{"2023-06-07", "2023-06-05", "2023-06-11"}, // midweek
		{"2023-06-11", "2023-06-05", "2023-06-11"}, // a Sunday
		{"2024-01-01", "2024-01-01", "2024-01-07"}, // year boundary
	}
	for _, tt := range tests {
		date, _ := asana.ParseDate(tt.date)
		from, to := WeekBounds(date)
		if from.String() != tt.monday || to.String() != tt.sunday {
			t.Errorf("WeekBounds(%s) = %s..%s, want %s..%s", tt.date, from, to, tt.monday, tt.sunday)
		}
		if from.Weekday() != time.Monday {
			t.Errorf("WeekBounds(%s) starts on %s", tt.date, from.Weekday())
		}
	}
}

func TestWeekName(t *testing.T) {
	date, _ := asana.ParseDate("2023-06-07")
	want := "Daily Focuses (2023-06-05 to 2023-06-11)"
	if got := WeekName(date); got != want {
		t.Errorf("WeekName = %q, want %q", got, want)
	}

	// The generated name must parse back.
	if _, err := ParseWeek(asana.Section{GID: "x", Name: WeekName(date)}); err != nil {
		t.Errorf("generated week name does not parse: %v", err)
	}
}
