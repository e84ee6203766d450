package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focusly/todo/internal/debug"
)

var (
	cachePathFlag  string
	configPathFlag string
	usePAT         bool
	useCache       bool
	verboseFlag    bool
	quietFlag      bool

	app *App
)

// Commands that run without credentials or cached state.
var offlineCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - Asana tasks and daily focus from the command line",
	Long: `A personal productivity CLI that mirrors your Asana "My Tasks" list
and a daily-focus ritual (stats, diary, subtasks) kept in a dedicated
Asana project, caching results locally for status-bar consumers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetVerbose(verboseFlag)
		debug.SetQuiet(quietFlag)

		if offlineCommands[cmd.Name()] {
			return nil
		}

		var err error
		app, err = newApp(cmd.Context())
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		// Reauthentication during the command may have replaced the
		// credentials; keep the cache in step.
		return app.PersistCredentials()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cachePathFlag, "cache-path", "~/.cache/todo/cache.json", "Path to the cache file")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config-path", "~/.config/todo/config.toml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&usePAT, "use-pat", false, "Use the discouraged personal access token flow (instead of OAuth)")
	rootCmd.PersistentFlags().BoolVar(&useCache, "use-cache", false, "Use the cache instead of pulling from Asana")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")
}

// expandHomeDir resolves a leading ~/ against the user's home directory.
func expandHomeDir(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
