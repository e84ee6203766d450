package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/focusly/todo/internal/focus"
)

var (
	statusFormat string
	forceStyling bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the focus status for status-bar consumers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if forceStyling {
			// Status bars run us without a tty; styling must be forced.
			color.NoColor = false
			lipgloss.SetColorProfile(termenv.TrueColor)
		}
		ctx := cmd.Context()

		tasks, err := app.Tasks(ctx)
		if err != nil {
			return err
		}
		grouped := groupTasks(tasks, app.Today)

		day, err := statusFocusDay(cmd)
		if err != nil {
			return err
		}

		status := focus.NewStatus(day, app.Now, len(grouped.Overdue), len(grouped.DueToday))
		switch statusFormat {
		case "short":
			// The tmux segment is only useful when the tmux integration
			// is on; print nothing otherwise so the bar stays clean.
			if app.Config.Tmux.Enabled {
				fmt.Println(status.ShortString())
			}
		case "json":
			enc := json.NewEncoder(os.Stdout)
			if err := enc.Encode(status); err != nil {
				return err
			}
		case "xbar":
			url, err := app.TaskListURL(ctx)
			if err != nil {
				return err
			}
			fmt.Print(status.XbarString(url))
		default:
			return fmt.Errorf("unknown format %q (want short, json, or xbar)", statusFormat)
		}
		return nil
	},
}

// statusFocusDay prefers the cached focus day in cache-only mode,
// resolving against the API otherwise.
func statusFocusDay(cmd *cobra.Command) (focus.Day, error) {
	if app.UseCache && app.Cache.FocusDay != nil {
		return *app.Cache.FocusDay, nil
	}
	resolver, err := app.Resolver()
	if err != nil {
		return focus.Day{}, err
	}
	return resolver.ResolveDay(cmd.Context(), app.Today)
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "short", "Output format: short, json, or xbar")
	statusCmd.Flags().BoolVar(&forceStyling, "force-styling", false, "Emit colors even without a tty")
	rootCmd.AddCommand(statusCmd)
}
