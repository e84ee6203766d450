// Package config loads and saves the todo configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/focusly/todo/internal/debug"
	"github.com/focusly/todo/internal/focus"
)

// Config is the application configuration. Values come from the TOML
// config file with TODO_* environment overrides on top.
type Config struct {
	// WorkspaceGID is the Asana workspace to create tasks in.
	// Auto-detected from the API when empty.
	WorkspaceGID string `mapstructure:"workspace_gid" toml:"workspace_gid,omitempty"`
	// FocusProjectGID is the project holding the daily-focus ritual.
	// The focus commands refuse to run without it.
	FocusProjectGID string `mapstructure:"focus_project_gid" toml:"focus_project_gid,omitempty"`

	Tmux  TmuxConfig        `mapstructure:"tmux" toml:"tmux"`
	Stats map[string]string `mapstructure:"stats" toml:"stats"`
}

// TmuxConfig controls the tmux status line integration.
type TmuxConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled"`
}

// FocusEnabled reports whether the focus feature is configured.
func (c Config) FocusEnabled() bool {
	return c.FocusProjectGID != ""
}

// StatFields maps the configured stat names to custom field GIDs.
func (c Config) StatFields() (focus.StatFields, error) {
	fields := make(focus.StatFields, len(c.Stats))
	for name, gid := range c.Stats {
		fields[focus.StatKind(name)] = gid
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stats configuration: %w", err)
	}
	return fields, nil
}

// Load reads the config at path, creating a default file when absent.
// Environment variables prefixed TODO_ override file values, e.g.
// TODO_FOCUS_PROJECT_GID.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		debug.Logf("no config at %s, writing defaults", path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Config{}, fmt.Errorf("could not create config directory: %w", err)
		}
		if err := Save(path, defaults()); err != nil {
			return Config{}, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("tmux.enabled", true)
	for kind, gid := range focus.DefaultStatFields {
		v.SetDefault("stats."+string(kind), gid)
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("could not parse config file: %w", err)
	}
	return c, nil
}

// Save writes the config to path as TOML.
func Save(path string, c Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	return nil
}

func defaults() Config {
	stats := make(map[string]string, len(focus.DefaultStatFields))
	for kind, gid := range focus.DefaultStatFields {
		stats[string(kind)] = gid
	}
	return Config{
		Tmux:  TmuxConfig{Enabled: true},
		Stats: stats,
	}
}
