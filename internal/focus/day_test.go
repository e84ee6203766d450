package focus

import (
	"testing"
	"time"

	"github.com/focusly/todo/internal/asana"
)

func TestParseDayDate(t *testing.T) {
	date, err := ParseDayDate("Daily Focus for Monday (2023-06-05)")
	if err != nil {
		t.Fatalf("ParseDayDate: %v", err)
	}
	if date.String() != "2023-06-05" {
		t.Errorf("date = %s", date)
	}

	// Abbreviated weekday names match too.
	if _, err := ParseDayDate("Daily Focus for Mon (2023-06-05)"); err != nil {
		t.Errorf("abbreviated weekday rejected: %v", err)
	}

	for _, name := range []string{
		"Daily Focus for (2023-06-05)",
		"Daily Focus for Monday",
		"Groceries",
		"Daily Focus for Monday (2023-06-05) again",
	} {
		if _, err := ParseDayDate(name); err == nil {
			t.Errorf("ParseDayDate(%q): expected error", name)
		}
	}
}

func TestDayNameRoundTrip(t *testing.T) {
	date, _ := asana.ParseDate("2023-06-05")
	name := DayName(date)
	if name != "Daily Focus for Monday (2023-06-05)" {
		t.Errorf("DayName = %q", name)
	}
	parsed, err := ParseDayDate(name)
	if err != nil {
		t.Fatalf("generated day name does not parse: %v", err)
	}
	if !parsed.Equal(date.Time) {
		t.Errorf("round trip = %s, want %s", parsed, date)
	}
}

func TestRoutineCompletion(t *testing.T) {
	var day Day
	if day.IsMorningDone() {
		t.Error("empty stats should not complete the morning")
	}
	if day.IsEveningDone() {
		t.Error("empty stats should not complete the evening")
	}

	day.Stats.Set(StatSleep, 7)
	day.Stats.Set(StatEnergy, 5)
	if !day.IsMorningDone() {
		t.Error("sleep+energy should complete the morning")
	}
	if day.IsEveningDone() {
		t.Error("morning stats alone should not complete the evening")
	}

	for _, kind := range StatKinds {
		day.Stats.Set(kind, 4)
	}
	if !day.IsEveningDone() {
		t.Error("all stats filled should complete the evening")
	}
}

func TestUnfilledStats(t *testing.T) {
	var day Day
	day.Stats.Set(StatSleep, 6)

	morning := day.UnfilledStats(false)
	if len(morning) != 1 || morning[0] != StatEnergy {
		t.Errorf("morning unfilled = %v, want [energy]", morning)
	}

	evening := day.UnfilledStats(true)
	if len(evening) != 6 {
		t.Errorf("evening unfilled = %v, want all but sleep", evening)
	}
	for _, kind := range evening {
		if kind == StatSleep {
			t.Error("filled stat listed as unfilled")
		}
	}
}

func TestIsEvening(t *testing.T) {
	day := time.Date(2023, 6, 5, 19, 59, 0, 0, time.Local)
	if IsEvening(day) {
		t.Error("19:59 should not be evening")
	}
	if !IsEvening(time.Date(2023, 6, 5, 20, 0, 0, 0, time.Local)) {
		t.Error("20:00 should be evening")
	}
}
