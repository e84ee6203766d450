package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/focusly/todo/internal/focus"
	"github.com/focusly/todo/internal/ui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print out a summary of current todo tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tasks, err := app.Tasks(ctx)
		if err != nil {
			return err
		}
		grouped := groupTasks(tasks, app.Today)

		var line string
		switch o, t := len(grouped.Overdue), len(grouped.DueToday); {
		case o == 0 && t == 0:
			line = color.New(color.FgGreen, color.Bold).Sprint("Nice! Everything done for now!")
		case t == 0:
			line = color.New(color.FgRed, color.Bold).Sprintf("You have %s overdue.", taskOrTasks(o))
		case o == 0:
			line = color.New(color.FgYellow, color.Bold).Sprintf("You have %s due today.", taskOrTasks(t))
		default:
			line = color.New(color.FgRed, color.Bold).Sprintf("You have %s overdue or due today.", taskOrTasks(o+t))
		}
		if w := len(grouped.DueThisWeek); w > 0 {
			line += color.BlueString(" You have another %s due within a week.", taskOrTasks(w))
		}

		url, err := app.TaskListURL(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", line, ui.RenderMuted("("+url+")"))

		printFocusNag()
		return nil
	},
}

// printFocusNag reminds about unfilled focus stats when the cached
// focus day is today's.
func printFocusNag() {
	day := app.Cache.FocusDay
	if day == nil || !day.Date.Equal(app.Today.Time) {
		return
	}

	missingMorning := !day.IsMorningDone()
	missingEvening := focus.IsEvening(app.Now) && !day.IsEveningDone()

	var nag string
	switch {
	case missingMorning && missingEvening:
		nag = "Don't forget your focus for the day!"
	case missingMorning:
		nag = "🌅 Don't forget to fill out your morning focus!"
	case missingEvening:
		nag = "🌙 Time for your evening focus reflection!"
	default:
		return
	}
	fmt.Printf("%s %s\n", color.YellowString(nag), ui.RenderMuted("(run `todo focus` to fill out focus data)"))
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
