package focus

import (
	"fmt"
	"strings"
	"time"

	"github.com/focusly/todo/internal/asana"
)

// Status condenses the focus day and task counts for status-bar
// consumers.
type Status struct {
	Date        asana.Date `json:"date"`
	MorningDone bool       `json:"morning_done"`
	EveningDone bool       `json:"evening_done"`
	Evening     bool       `json:"evening"`
	Overdue     int        `json:"overdue"`
	DueToday    int        `json:"due_today"`
}

// NewStatus builds the status for a resolved day at the given time.
func NewStatus(day Day, now time.Time, overdue, dueToday int) Status {
	return Status{
		Date:        day.Date,
		MorningDone: day.IsMorningDone(),
		EveningDone: day.IsEveningDone(),
		Evening:     IsEvening(now),
		Overdue:     overdue,
		DueToday:    dueToday,
	}
}

// Pending lists the routine steps still owed right now.
func (s Status) Pending() []string {
	var pending []string
	if !s.MorningDone {
		pending = append(pending, "morning stats")
	}
	if s.Evening && !s.EveningDone {
		pending = append(pending, "evening stats")
	}
	return pending
}

// ShortString renders a one-line summary for shell prompts and tmux
// status bars.
func (s Status) ShortString() string {
	var parts []string
	if pending := s.Pending(); len(pending) > 0 {
		parts = append(parts, "focus!")
	}
	if s.Overdue > 0 {
		parts = append(parts, fmt.Sprintf("%d overdue", s.Overdue))
	}
	if s.DueToday > 0 {
		parts = append(parts, fmt.Sprintf("%d today", s.DueToday))
	}
	if len(parts) == 0 {
		return "🧠 ✓"
	}
	return "🧠 " + strings.Join(parts, " · ")
}

// XbarString renders the status in the xbar/SwiftBar plugin format: a
// menu bar line, a separator, then one menu item per detail.
func (s Status) XbarString(taskListURL string) string {
	var b strings.Builder
	b.WriteString(s.ShortString())
	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "Focus Day: %s\n", s.Date)
	for _, step := range s.Pending() {
		fmt.Fprintf(&b, "Pending: %s | color=red\n", step)
	}
	fmt.Fprintf(&b, "Overdue: %d\n", s.Overdue)
	fmt.Fprintf(&b, "Due today: %d\n", s.DueToday)
	if taskListURL != "" {
		fmt.Fprintf(&b, "Open My Tasks | href=%s\n", taskListURL)
	}
	return b.String()
}
