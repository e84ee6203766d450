// Package debug provides env-gated diagnostic logging for the todo CLI.
package debug

import (
	"fmt"
	"os"
)

var (
	enabled     = os.Getenv("TODO_DEBUG") != ""
	verboseMode = false
	quietMode   = false
)

func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose enables verbose/debug output
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetQuiet enables quiet mode (suppress non-essential output)
func SetQuiet(quiet bool) {
	quietMode = quiet
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quietMode
}

// Logf writes a diagnostic line to stderr when debug output is enabled.
func Logf(format string, args ...interface{}) {
	if enabled || verboseMode {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Warnf writes a warning line to stderr. Warnings are shown unless quiet
// mode is enabled; they are not gated on debug being on.
func Warnf(format string, args ...interface{}) {
	if !quietMode {
		fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
	}
}

// PrintNormal prints output unless quiet mode is enabled
func PrintNormal(format string, args ...interface{}) {
	if !quietMode {
		fmt.Printf(format, args...)
	}
}
