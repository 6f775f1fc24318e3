// Package detector decides how child process output is attached to the terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how child process diagnostics are captured.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePTY attaches stderr to a pseudo terminal so tools keep their colors.
	ModePTY
	// ModePipe attaches stderr to a plain pipe.
	ModePipe
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModePTY:
		return "pty"
	case ModePipe:
		return "pipe"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stderr is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePipe
	}
	return ModePTY
}

// ResolveMode applies a user override to auto-detection.
// flag should be one of: "auto", "pty", "pipe", "ci", or empty.
func ResolveMode(flag string, autoDetected OutputMode) OutputMode {
	switch flag {
	case "pty":
		return ModePTY
	case "pipe", "ci":
		return ModePipe
	default:
		return autoDetected
	}
}
