package main

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/ui"
)

// doneSentinel is the "stop completing" choice in the picker.
const doneSentinel = ""

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete tasks from your todo list",
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.UseCache {
			return fmt.Errorf("cannot complete tasks in cache-only mode")
		}
		ctx := cmd.Context()

		tasks, err := app.Tasks(ctx)
		if err != nil {
			return err
		}
		remaining := sortTasksForPicker(tasks)

		var g errgroup.Group
		completed := 0
		for len(remaining) > 0 {
			options := make([]huh.Option[string], 0, len(remaining)+1)
			for _, task := range remaining {
				label := task.Name
				if !task.DueOn.IsZero() {
					label = fmt.Sprintf("(%s) %s", task.DueOn, task.Name)
				}
				options = append(options, huh.NewOption(label, task.GID))
			}
			options = append(options, huh.NewOption("[done]", doneSentinel))

			var picked string
			form := huh.NewForm(huh.NewGroup(
				huh.NewSelect[string]().
					Title("Which task did you complete?").
					Options(options...).
					Value(&picked),
			))
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					break
				}
				return errors.Join(err, g.Wait())
			}
			if picked == doneSentinel {
				break
			}

			gid := picked
			g.Go(func() error {
				_, err := app.Client.Mutate(ctx, http.MethodPut, "tasks/"+gid, asana.CompleteTaskRequest{Completed: true})
				if err != nil {
					return fmt.Errorf("failed to complete task %s: %w", gid, err)
				}
				return nil
			})
			completed++
			remaining = removeTask(remaining, gid)
		}

		if completed > 0 {
			fmt.Println(ui.RenderMuted("Waiting for completions to sync..."))
		}
		if err := g.Wait(); err != nil {
			return err
		}
		if completed > 0 {
			fmt.Printf("%s %s\n", color.GreenString("Completed"), taskOrTasks(completed))
		}
		return nil
	},
}

// sortTasksForPicker orders tasks by due date ascending, undated last.
func sortTasksForPicker(tasks []asana.UserTask) []asana.UserTask {
	sorted := make([]asana.UserTask, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].DueOn, sorted[j].DueOn
		if a.IsZero() || b.IsZero() {
			return !a.IsZero()
		}
		return a.Before(b.Time)
	})
	return sorted
}

func removeTask(tasks []asana.UserTask, gid string) []asana.UserTask {
	out := tasks[:0]
	for _, task := range tasks {
		if task.GID != gid {
			out = append(out, task)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
