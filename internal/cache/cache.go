// Package cache persists fetched Asana data between runs so status-bar
// consumers can read without hitting the API.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/focusly/todo/internal/asana"
	"github.com/focusly/todo/internal/debug"
	"github.com/focusly/todo/internal/focus"
)

// Cache is the on-disk snapshot. All fields are optional; a zero Cache
// is a valid empty snapshot.
type Cache struct {
	Creds        asana.Credentials   `json:"creds,omitempty"`
	UserTaskList *asana.UserTaskList `json:"user_task_list,omitempty"`
	Tasks        []asana.UserTask    `json:"tasks,omitempty"`
	FocusDay     *focus.Day          `json:"focus_day,omitempty"`
	LastUpdated  *time.Time          `json:"last_updated,omitempty"`
}

// Load reads the cache at path, creating an empty one when absent. A
// corrupt file is wiped and replaced rather than failing the run.
func Load(path string) (Cache, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		debug.Logf("no cache at %s, creating an empty one", path)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return Cache{}, fmt.Errorf("could not create cache directory: %w", err)
		}
		if err := Save(path, Cache{}); err != nil {
			return Cache{}, err
		}
		return Cache{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Cache{}, fmt.Errorf("could not read cache file: %w", err)
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		debug.Warnf("cache at %s is corrupt, wiping it: %v", path, err)
		if err := Save(path, Cache{}); err != nil {
			return Cache{}, err
		}
		return Cache{}, nil
	}
	return c, nil
}

// Save writes the cache to path as pretty-printed JSON.
func Save(path string, c Cache) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("could not write cache file: %w", err)
	}
	return nil
}

// LockPath returns the auth lock location beside the cache file.
func LockPath(cachePath string) string {
	return filepath.Join(filepath.Dir(cachePath), "auth.lock")
}

// Stale reports whether the snapshot is older than maxAge, or was never
// updated at all.
func (c Cache) Stale(now time.Time, maxAge time.Duration) bool {
	return c.LastUpdated == nil || now.Sub(*c.LastUpdated) > maxAge
}
