package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/focusly/todo/internal/focus"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Tmux.Enabled {
		t.Error("tmux should default to enabled")
	}
	if c.FocusEnabled() {
		t.Error("focus should be disabled without a project GID")
	}

	fields, err := c.StatFields()
	if err != nil {
		t.Fatalf("StatFields: %v", err)
	}
	if fields[focus.StatSleep] != focus.DefaultStatFields[focus.StatSleep] {
		t.Errorf("sleep GID = %q", fields[focus.StatSleep])
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
workspace_gid = "123"
focus_project_gid = "456"

[tmux]
enabled = false

[stats]
sleep = "91"
energy = "92"
flow = "93"
hydration = "94"
health = "95"
satisfaction = "96"
stress = "97"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.WorkspaceGID != "123" || c.FocusProjectGID != "456" {
		t.Errorf("gids = %q %q", c.WorkspaceGID, c.FocusProjectGID)
	}
	if !c.FocusEnabled() {
		t.Error("focus should be enabled")
	}
	if c.Tmux.Enabled {
		t.Error("tmux should be disabled")
	}

	fields, err := c.StatFields()
	if err != nil {
		t.Fatalf("StatFields: %v", err)
	}
	if fields[focus.StatStress] != "97" {
		t.Errorf("stress GID = %q", fields[focus.StatStress])
	}
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`focus_project_gid = "456"`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TODO_FOCUS_PROJECT_GID", "789")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.FocusProjectGID != "789" {
		t.Errorf("FocusProjectGID = %q, want env override 789", c.FocusProjectGID)
	}
}

func TestBadStatsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[stats]
sleep = "1"
energy = "1"
flow = "3"
hydration = "4"
health = "5"
satisfaction = "6"
stress = "7"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := c.StatFields(); err == nil {
		t.Error("expected error for duplicate stat GIDs")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	c := defaults()
	c.WorkspaceGID = "42"
	if err := Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.WorkspaceGID != "42" {
		t.Errorf("WorkspaceGID = %q", loaded.WorkspaceGID)
	}
	if !loaded.Tmux.Enabled {
		t.Error("tmux enabled not preserved")
	}
}
