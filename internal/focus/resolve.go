package focus

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/debug"
)

// Resolver finds or creates the focus day for a date inside the focus
// project.
type Resolver struct {
	Client     *asana.Client
	ProjectGID string
	StatFields StatFields
}

// ResolveDay returns the focus day for date, creating the containing
// week section and the day task as needed. Resolving an existing day is
// read-only.
func (r *Resolver) ResolveDay(ctx context.Context, date asana.Date) (Day, error) {
	week, err := r.resolveWeek(ctx, date)
	if err != nil {
		return Day{}, err
	}

	tasks, err := asana.Fetch(ctx, r.Client, asana.SectionTasks, week.Section.GID)
	if err != nil {
		return Day{}, fmt.Errorf("failed to fetch focus tasks: %w", err)
	}

	days := r.collectDays(tasks)
	for _, day := range days {
		if day.Date.Equal(date.Time) {
			debug.Logf("found focus day %s", day.Date)
			full, err := NewDay(day.Task, r.StatFields)
			if err != nil {
				return Day{}, err
			}
			return full, nil
		}
	}

	return r.createDay(ctx, date, week, days)
}

// resolveWeek finds the week section containing date, creating it when
// absent. The parsed weeks are returned sorted by start date; server
// section order is never trusted.
func (r *Resolver) resolveWeek(ctx context.Context, date asana.Date) (Week, error) {
	sections, err := asana.Fetch(ctx, r.Client, asana.Sections, r.ProjectGID)
	if err != nil {
		return Week{}, fmt.Errorf("failed to fetch focus sections: %w", err)
	}

	weeks := make([]Week, 0, len(sections))
	for _, section := range sections {
		if !strings.HasPrefix(section.Name, "Daily Focuses") {
			continue
		}
		week, err := ParseWeek(section)
		if err != nil {
			debug.Warnf("skipping unparseable focus section: %v", err)
			continue
		}
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].From.Before(weeks[j].From.Time) })
	debug.Logf("found %d focus weeks", len(weeks))

	for _, week := range weeks {
		if week.Contains(date) {
			return week, nil
		}
	}

	debug.Logf("no focus week contains %s, creating one", date)
	req := asana.CreateSectionRequest{Name: WeekName(date)}
	if len(weeks) > 0 {
		req.InsertBefore = weeks[0].Section.GID
	}
	raw, err := r.Client.Mutate(ctx, "POST", "projects/"+r.ProjectGID+"/sections", req)
	if err != nil {
		return Week{}, fmt.Errorf("failed to create focus week: %w", err)
	}
	section, err := asana.DecodeData[asana.Section](raw)
	if err != nil {
		return Week{}, err
	}
	week, err := ParseWeek(section)
	if err != nil {
		return Week{}, fmt.Errorf("created focus week has unexpected name: %w", err)
	}
	return week, nil
}

// collectDays parses week tasks into dated days, skipping tasks outside
// the naming scheme. Stats are not decoded here; only the selected day
// gets the full treatment.
func (r *Resolver) collectDays(tasks []asana.FocusTask) []Day {
	days := make([]Day, 0, len(tasks))
	for _, task := range tasks {
		if !strings.HasPrefix(task.Name, "Daily Focus for") {
			continue
		}
		date, err := ParseDayDate(task.Name)
		if err != nil {
			debug.Warnf("skipping unparseable focus task: %v", err)
			continue
		}
		days = append(days, Day{Task: task, Date: date, Diary: task.Notes})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date.Time) })
	return days
}

func (r *Resolver) createDay(ctx context.Context, date asana.Date, week Week, siblings []Day) (Day, error) {
	debug.Logf("no focus day for %s, creating one", date)
	raw, err := r.Client.Mutate(ctx, "POST", "tasks", asana.CreateSectionTaskRequest{
		Name:     DayName(date),
		Projects: []string{r.ProjectGID},
		Memberships: []asana.Membership{
			{Project: r.ProjectGID, Section: week.Section.GID},
		},
	})
	if err != nil {
		return Day{}, fmt.Errorf("failed to create focus day: %w", err)
	}
	task, err := asana.DecodeData[asana.FocusTask](raw)
	if err != nil {
		return Day{}, err
	}
	day, err := NewDay(task, r.StatFields)
	if err != nil {
		return Day{}, err
	}

	// Keep the section sorted: slot the new day after its nearest
	// earlier sibling. With no earlier sibling the server position
	// stands.
	var previous *Day
	for i := range siblings {
		if siblings[i].Date.Before(date.Time) {
			previous = &siblings[i]
		}
	}
	if previous != nil {
		_, err := r.Client.Mutate(ctx, "POST", "sections/"+week.Section.GID+"/addTask", asana.AddTaskToSectionRequest{
			Task:        day.Task.GID,
			InsertAfter: previous.Task.GID,
		})
		if err != nil {
			return Day{}, fmt.Errorf("failed to order focus day: %w", err)
		}
	}

	return day, nil
}

// LoadSubtasks fetches the day's subtasks into place.
func (r *Resolver) LoadSubtasks(ctx context.Context, day *Day) error {
	subtasks, err := asana.Fetch(ctx, r.Client, asana.Subtasks, day.Task.GID)
	if err != nil {
		return fmt.Errorf("failed to fetch subtasks: %w", err)
	}
	day.Subtasks = subtasks
	return nil
}

// UpdateDay writes a new diary and stats back to the day's task.
func (r *Resolver) UpdateDay(ctx context.Context, day Day, diary string, stats Stats) error {
	_, err := r.Client.Mutate(ctx, "PUT", "tasks/"+day.Task.GID, asana.UpdateFocusRequest{
		Notes:        diary,
		CustomFields: EncodeCustomFields(stats, r.StatFields),
	})
	if err != nil {
		return fmt.Errorf("failed to sync focus day: %w", err)
	}
	return nil
}

// CreateSubtask adds a subtask to the day, assigned to the user and due
// on the given date.
func (r *Resolver) CreateSubtask(ctx context.Context, day Day, name string, due asana.Date) error {
	_, err := r.Client.Mutate(ctx, "POST", "tasks/"+day.Task.GID+"/subtasks", asana.CreateSubtaskRequest{
		Name:     name,
		Assignee: "me",
		DueOn:    due,
	})
	if err != nil {
		return fmt.Errorf("failed to create subtask: %w", err)
	}
	return nil
}
