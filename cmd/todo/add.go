package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/timeparsing"
)

var (
	addDue         string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a task to your todo list",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if app.UseCache {
			return fmt.Errorf("cannot add tasks in cache-only mode")
		}
		ctx := cmd.Context()

		var name string
		if len(args) > 0 {
			name = strings.TrimSpace(args[0])
		}
		if name == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("task name required when not running interactively")
			}
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("task name").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name cannot be empty")
						}
						return nil
					}),
			))
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			name = strings.TrimSpace(name)
		}

		var dueOn asana.Date
		if addDue != "" {
			due, err := timeparsing.ParseRelativeTime(addDue, app.Now)
			if err != nil {
				return fmt.Errorf("could not parse due date %q: %w", addDue, err)
			}
			dueOn = asana.DateOf(due)
		}

		workspace, err := app.Workspace(ctx)
		if err != nil {
			return err
		}
		raw, err := app.Client.Mutate(ctx, http.MethodPost, "tasks", asana.CreateTaskRequest{
			Name:      name,
			Notes:     addDescription,
			Assignee:  "me",
			Workspace: workspace,
			DueOn:     dueOn,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		task, err := asana.DecodeData[asana.UserTask](raw)
		if err != nil {
			return err
		}

		if dueOn.IsZero() {
			fmt.Printf("%s %s\n", color.GreenString("Added:"), task.Name)
		} else {
			fmt.Printf("%s %s (due %s)\n", color.GreenString("Added:"), task.Name, dueOn)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (yyyy-mm-dd, RFC 3339, 2d/1w, or natural language)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Task description")
	rootCmd.AddCommand(addCmd)
}
