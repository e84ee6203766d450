// Package authlock serializes interactive authorization flows across
// processes. The lock is a small file holding the acquisition time as a
// decimal Unix timestamp; a crashed process leaves it behind, so locks
// older than MaxAge are treated as stale and taken over.
package authlock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/focusly/todo/internal/debug"
)

// MaxAge is how long a lock is honored before it is considered stale.
const MaxAge = 5 * time.Minute

// ErrAlreadyLocked means another process holds a live lock.
var ErrAlreadyLocked = errors.New("another authorization is already in progress")

// Guard represents a held lock.
type Guard struct {
	path string
}

// Acquire takes the lock at path, replacing a stale one if present.
// Returns ErrAlreadyLocked when a live lock is held elsewhere; other
// errors indicate I/O problems.
func Acquire(path string) (*Guard, error) {
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
		if err == nil {
			_, werr := fmt.Fprintf(f, "%d", time.Now().Unix())
			cerr := f.Close()
			if werr != nil || cerr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("failed to write lock file: %w", errors.Join(werr, cerr))
			}
			return &Guard{path: path}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create lock file: %w", err)
		}

		stale, serr := isStale(path)
		if serr != nil {
			return nil, serr
		}
		if !stale {
			return nil, ErrAlreadyLocked
		}
		debug.Logf("removing stale auth lock at %s", path)
		if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lock: %w", rerr)
		}
	}
	return nil, ErrAlreadyLocked
}

// Release removes the lock file. Safe to call once per Guard; removal
// happens unconditionally even if the lock has gone stale meanwhile.
func (g *Guard) Release() {
	if err := os.Remove(g.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		debug.Warnf("failed to remove auth lock: %v", err)
	}
}

// InProgress reports whether a live (non-stale) lock exists at path.
func InProgress(path string) bool {
	stale, err := isStale(path)
	if err != nil {
		return false
	}
	return !stale
}

func isStale(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		// Holder released between our create attempt and this read.
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read lock file: %w", err)
	}

	unix, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		// Garbage content counts as stale.
		return true, nil
	}
	return time.Since(time.Unix(unix, 0)) > MaxAge, nil
}
