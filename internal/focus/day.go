package focus

import (
	"fmt"
	"regexp"
	"time"

	"github.com/focusly/todo/internal/asana"
)

var dayPattern = regexp.MustCompile(`^Daily Focus for \w+ \((\d{4}-\d{2}-\d{2})\)$`)

// StartHourForEOD is the hour after which the evening routine begins.
const StartHourForEOD = 20

// IsEvening reports whether the evening routine applies at the given
// local time.
func IsEvening(now time.Time) bool {
	return now.Hour() >= StartHourForEOD
}

// Day is one focus day: a task whose notes hold the diary and whose
// custom fields hold the stats.
type Day struct {
	Task     asana.FocusTask
	Date     asana.Date
	Stats    Stats
	Diary    string
	Subtasks []asana.Subtask
}

// ParseDayDate extracts the date from a focus day task name. Names not
// following the day naming scheme are rejected.
func ParseDayDate(name string) (asana.Date, error) {
	m := dayPattern.FindStringSubmatch(name)
	if m == nil {
		return asana.Date{}, fmt.Errorf("task %q is not a focus day", name)
	}
	date, err := asana.ParseDate(m[1])
	if err != nil {
		return asana.Date{}, fmt.Errorf("task %q: %w", name, err)
	}
	return date, nil
}

// DayName builds the task name for the focus day on date.
func DayName(date asana.Date) string {
	return fmt.Sprintf("Daily Focus for %s (%s)", date.Weekday(), date)
}

// NewDay interprets a focus task as a day, decoding its stats.
func NewDay(task asana.FocusTask, statFields StatFields) (Day, error) {
	date, err := ParseDayDate(task.Name)
	if err != nil {
		return Day{}, err
	}
	stats, err := DecodeStats(task.CustomFields, statFields)
	if err != nil {
		return Day{}, fmt.Errorf("focus day %s: %w", date, err)
	}
	return Day{
		Task:  task,
		Date:  date,
		Stats: stats,
		Diary: task.Notes,
	}, nil
}

// IsMorningDone reports whether the morning stats are filled.
func (d Day) IsMorningDone() bool {
	return d.Stats.Sleep != nil && d.Stats.Energy != nil
}

// IsEveningDone reports whether the evening stats are filled.
func (d Day) IsEveningDone() bool {
	for _, kind := range StatKinds {
		if kind.IsMorning() {
			continue
		}
		if d.Stats.Get(kind) == nil {
			return false
		}
	}
	return true
}

// UnfilledStats lists the stats still to be prompted for: morning stats
// always, evening stats only when the evening routine applies.
func (d Day) UnfilledStats(evening bool) []StatKind {
	var unfilled []StatKind
	for _, kind := range StatKinds {
		if d.Stats.Get(kind) != nil {
			continue
		}
		if kind.IsMorning() || evening {
			unfilled = append(unfilled, kind)
		}
	}
	return unfilled
}

func (d Day) String() string {
	return fmt.Sprintf("Focus Day (%s)", d.Date)
}
