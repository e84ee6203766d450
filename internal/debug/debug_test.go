package debug

import "testing"

func TestVerboseToggle(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !Enabled() {
		t.Error("Enabled() = false after SetVerbose(true)")
	}

	SetVerbose(false)
	if enabled {
		t.Skip("TODO_DEBUG set in environment")
	}
	if Enabled() {
		t.Error("Enabled() = true after SetVerbose(false)")
	}
}

func TestQuietToggle(t *testing.T) {
	defer SetQuiet(false)

	SetQuiet(true)
	if !IsQuiet() {
		t.Error("IsQuiet() = false after SetQuiet(true)")
	}

	SetQuiet(false)
	if IsQuiet() {
		t.Error("IsQuiet() = true after SetQuiet(false)")
	}
}
