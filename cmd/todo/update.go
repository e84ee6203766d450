package main

import (
	"github.com/spf13/cobra"

	"github.com/focusly/todo/internal/cache"
	"github.com/focusly/todo/internal/debug"
)

// updateCmd refreshes the cache snapshot. It is meant to run from cron
// or a launchd agent so cache-only consumers stay current, and prints
// nothing on success.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the local cache from Asana",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Always pull fresh data, even when --use-cache was passed.
		app.UseCache = false

		tasks, err := app.Tasks(ctx)
		if err != nil {
			return err
		}
		app.Cache.Tasks = tasks

		if app.Config.FocusEnabled() {
			resolver, err := app.Resolver()
			if err != nil {
				return err
			}
			day, err := resolver.ResolveDay(ctx, app.Today)
			if err != nil {
				return err
			}
			app.Cache.FocusDay = &day
		}

		app.Cache.LastUpdated = &app.Now
		debug.Logf("cache updated with %d tasks", len(tasks))
		return cache.Save(app.CachePath, app.Cache)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
