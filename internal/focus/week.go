// Package focus models the daily-focus ritual kept in a dedicated Asana
// project: weekly sections holding one task per day, with stats stored
// in numeric custom fields and the diary in the task notes.
package focus

import (
	"fmt"
	"regexp"

	"github.com/focusly/todo/internal/asana"
)

var weekPattern = regexp.MustCompile(`^Daily Focuses \((\d{4}-\d{2}-\d{2}) to (\d{4}-\d{2}-\d{2})\)$`)

// Week is a project section covering one calendar week of focus days.
type Week struct {
	Section asana.Section
	From    asana.Date
	To      asana.Date
}

// ParseWeek interprets a section as a focus week. Sections whose names
// do not follow the week naming scheme are rejected.
func ParseWeek(section asana.Section) (Week, error) {
	m := weekPattern.FindStringSubmatch(section.Name)
	if m == nil {
		return Week{}, fmt.Errorf("section %q is not a focus week", section.Name)
	}
	from, err := asana.ParseDate(m[1])
	if err != nil {
		return Week{}, fmt.Errorf("section %q: %w", section.Name, err)
	}
	to, err := asana.ParseDate(m[2])
	if err != nil {
		return Week{}, fmt.Errorf("section %q: %w", section.Name, err)
	}
	return Week{Section: section, From: from, To: to}, nil
}

// Contains reports whether date falls within the week, inclusive.
func (w Week) Contains(date asana.Date) bool {
	return !date.Before(w.From.Time) && !date.After(w.To.Time)
}

func (w Week) String() string {
	return fmt.Sprintf("Focus Week (%s to %s)", w.From, w.To)
}

// WeekName builds the section name for the week containing date
// (Monday through Sunday).
func WeekName(date asana.Date) string {
	from, to := WeekBounds(date)
	return fmt.Sprintf("Daily Focuses (%s to %s)", from, to)
}

// WeekBounds returns the Monday and Sunday of the week containing date.
func WeekBounds(date asana.Date) (asana.Date, asana.Date) {
	sinceMonday := (int(date.Weekday()) + 6) % 7
	monday := date.AddDays(-sinceMonday)
	return monday, monday.AddDays(6)
}
