package main

import (
	"fmt"
	"sort"

	"github.com/focusly/todo/internal/asana"
)

// GroupedTasks buckets tasks by due date relative to today. Each bucket
// is sorted by due date ascending.
type GroupedTasks struct {
	Overdue     []asana.UserTask
	DueToday    []asana.UserTask
	DueThisWeek []asana.UserTask
}

// groupTasks splits tasks into overdue / due today / due within a week.
// Undated tasks fall into no bucket.
func groupTasks(tasks []asana.UserTask, today asana.Date) GroupedTasks {
	weekEnd := today.AddDays(7)

	var g GroupedTasks
	for _, task := range tasks {
		switch {
		case task.DueOn.IsZero():
		case task.DueOn.Before(today.Time):
			g.Overdue = append(g.Overdue, task)
		case task.DueOn.Equal(today.Time):
			g.DueToday = append(g.DueToday, task)
		case !task.DueOn.After(weekEnd.Time):
			g.DueThisWeek = append(g.DueThisWeek, task)
		}
	}

	byDue := func(tasks []asana.UserTask) func(i, j int) bool {
		return func(i, j int) bool { return tasks[i].DueOn.Before(tasks[j].DueOn.Time) }
	}
	sort.SliceStable(g.Overdue, byDue(g.Overdue))
	sort.SliceStable(g.DueToday, byDue(g.DueToday))
	sort.SliceStable(g.DueThisWeek, byDue(g.DueThisWeek))
	return g
}

// taskOrTasks pluralizes a task count.
func taskOrTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
