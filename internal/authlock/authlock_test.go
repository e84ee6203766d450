package authlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.lock")

	guard, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("lock file missing after acquire: %v", err)
	}

	guard.Release()
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("lock file still present after release: %v", err)
	}
}

func TestMutualExclusion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.lock")

	guard, err := Acquire(path)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	defer guard.Release()

	if _, err := Acquire(path); !errors.Is(err, ErrAlreadyLocked) {
		t.Errorf("second Acquire err = %v, want ErrAlreadyLocked", err)
	}
}

func TestStaleLockTakeover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.lock")

	stale := time.Now().Add(-MaxAge - time.Minute).Unix()
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%d", stale)), 0600); err != nil {
		t.Fatal(err)
	}

	guard, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire over stale lock: %v", err)
	}
	guard.Release()
}

func TestGarbageLockTakenOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.lock")
	if err := os.WriteFile(path, []byte("not a timestamp"), 0600); err != nil {
		t.Fatal(err)
	}

	guard, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire over garbage lock: %v", err)
	}
	guard.Release()
}

func TestInProgress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.lock")

	if InProgress(path) {
		t.Error("InProgress = true with no lock file")
	}

	guard, err := Acquire(path)
	if err != nil {
		t.Fatal(err)
	}
	if !InProgress(path) {
		t.Error("InProgress = false while lock held")
	}
	guard.Release()

	stale := time.Now().Add(-MaxAge - time.Minute).Unix()
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%d", stale)), 0600); err != nil {
		t.Fatal(err)
	}
	if InProgress(path) {
		t.Error("InProgress = true for stale lock")
	}
}
