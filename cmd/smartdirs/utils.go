package main

import (
	"os"
)

// isInteractiveEnvironment returns true if the environment appears to be
// an interactive TTY session (and not CI).
func isInteractiveEnvironment() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if fi, err := os.Stderr.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) != 0
	}
	return false
}
