package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/debug"
	"github.com/focusly/todo/internal/focus"
	"github.com/focusly/todo/internal/ui"
)

var (
	focusDateFlag string
	forceEOD      bool
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Manage the focus project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocusRoutine(cmd)
	},
}

var focusRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the focus routine",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocusRoutine(cmd)
	},
}

var focusOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Print out an overview of the focus day",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := app.Resolver()
		if err != nil {
			return err
		}
		date, err := focusDate()
		if err != nil {
			return err
		}

		day, err := resolver.ResolveDay(cmd.Context(), date)
		if err != nil {
			return err
		}
		fmt.Print(renderDay(day))
		return nil
	},
}

func focusDate() (asana.Date, error) {
	if focusDateFlag == "" {
		return app.Today, nil
	}
	return asana.ParseDate(focusDateFlag)
}

func runFocusRoutine(cmd *cobra.Command) error {
	ctx := cmd.Context()

	resolver, err := app.Resolver()
	if err != nil {
		return err
	}
	date, err := focusDate()
	if err != nil {
		return err
	}

	day, err := resolver.ResolveDay(ctx, date)
	if err != nil {
		return err
	}

	evening := forceEOD || date.Before(app.Today.Time) || focus.IsEvening(app.Now)
	unfilled := day.UnfilledStats(evening)

	newStats := day.Stats
	if len(unfilled) == 0 {
		fmt.Printf("%s\n\n", color.New(color.FgGreen, color.Bold).Sprint("All caught up on stats!"))
	} else {
		fmt.Println(color.New(color.FgCyan, color.Bold).Sprint("Time to fill out some stats!"))
		for _, kind := range unfilled {
			value, err := promptStat(kind)
			if err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
			newStats.Set(kind, value)
		}
		fmt.Println()
	}

	fmt.Println(color.New(color.FgMagenta, color.Bold).Sprint("Have anything to say?"))
	newDiary := day.Diary
	diaryForm := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("diary").
			Value(&newDiary),
	))
	if err := diaryForm.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	fmt.Println()

	// Background units: the diary/stats sync and each subtask
	// creation. All are joined before the command returns.
	var g errgroup.Group
	g.Go(func() error {
		if newStats.Equal(day.Stats) && newDiary == day.Diary {
			debug.Logf("no focus data changes to sync")
			return nil
		}
		return resolver.UpdateDay(ctx, day, newDiary, newStats)
	})

	if err := resolver.LoadSubtasks(ctx, &day); err != nil {
		return errors.Join(err, g.Wait())
	}

	fmt.Println(color.New(color.FgRed, color.Bold).Sprint("Any tasks to do today?"))
	subtasks := day.Subtasks
	for {
		for _, subtask := range subtasks {
			fmt.Printf("- %s\n", subtask.Name)
		}

		var name string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("new task").
				Description("leave empty to finish").
				Value(&name),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				break
			}
			return errors.Join(err, g.Wait())
		}
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}

		subtasks = append(subtasks, asana.Subtask{Name: name})
		g.Go(func() error {
			return resolver.CreateSubtask(ctx, day, name, app.Today)
		})
	}

	fmt.Println(ui.RenderMuted("Waiting for focus data to sync..."))
	return g.Wait()
}

func promptStat(kind focus.StatKind) (int, error) {
	var raw string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("%s (0-9)", kind)).
			Value(&raw).
			Validate(func(s string) error {
				v, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("enter a number")
				}
				if v < 0 || v > 9 {
					return fmt.Errorf("value must be between 0 and 9")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	return value, nil
}

// renderDay renders the focus day overview: header, diary, and the
// stats with unfilled ones dimmed.
func renderDay(day focus.Day) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧠 %s %s\n",
		ui.RenderHeader(fmt.Sprintf("Focus Day: %s", day.Date.Weekday())),
		ui.RenderMuted(fmt.Sprintf("(%s)", day.Date)))

	if day.Diary == "" {
		fmt.Fprintf(&b, "\n%s\n", ui.RenderMuted("no diary entry yet."))
	} else {
		fmt.Fprintf(&b, "\n%s\n", day.Diary)
	}

	fmt.Fprintf(&b, "\n%s\n", ui.RenderHeader("❤️ Statistics"))
	for _, kind := range focus.StatKinds {
		value := "-"
		if v := day.Stats.Get(kind); v != nil {
			value = strconv.Itoa(*v)
		}
		line := fmt.Sprintf("%s: %s", kind, value)
		if day.Stats.Get(kind) == nil {
			line = ui.RenderMuted(line)
		}
		fmt.Fprintf(&b, "   %s\n", line)
	}
	return b.String()
}

func init() {
	focusCmd.PersistentFlags().StringVar(&focusDateFlag, "date", "", "The date to focus on (yyyy-mm-dd, default today)")
	focusCmd.PersistentFlags().BoolVar(&forceEOD, "force-eod", false, "Force the end of day to be considered to be starting")
	focusCmd.AddCommand(focusRunCmd, focusOverviewCmd)
	rootCmd.AddCommand(focusCmd)
}
