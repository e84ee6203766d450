package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/focusly/todo/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print out a list of todo tasks ordered by due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := app.Tasks(cmd.Context())
		if err != nil {
			return err
		}
		grouped := groupTasks(tasks, app.Today)

		var b strings.Builder
		if len(grouped.Overdue) > 0 {
			fmt.Fprintf(&b, "%s %s\n",
				color.New(color.FgRed, color.Bold).Sprint(taskOrTasks(len(grouped.Overdue))),
				color.New(color.Bold).Sprint("overdue:"))
			for _, task := range grouped.Overdue {
				fmt.Fprintf(&b, "- (%s) %s\n", ui.RenderOverdue(task.DueOn.String()), task.Name)
			}
			b.WriteString("\n")
		}

		if len(grouped.DueToday) > 0 {
			fmt.Fprintf(&b, "%s %s\n",
				color.YellowString(taskOrTasks(len(grouped.DueToday))),
				color.New(color.Bold).Sprint("due today:"))
			for _, task := range grouped.DueToday {
				fmt.Fprintf(&b, "- %s\n", task.Name)
			}
			b.WriteString("\n")
		}

		if len(grouped.DueThisWeek) > 0 {
			fmt.Fprintf(&b, "%s %s\n",
				color.BlueString(taskOrTasks(len(grouped.DueThisWeek))),
				color.New(color.Bold).Sprint("due within a week:"))
			for _, task := range grouped.DueThisWeek {
				fmt.Fprintf(&b, "- (%s) %s\n", ui.RenderAccent(task.DueOn.String()), task.Name)
			}
		}

		if b.Len() == 0 {
			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Nice! Everything done for now!"))
			return nil
		}
		fmt.Println(strings.TrimSpace(b.String()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
