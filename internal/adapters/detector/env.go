// Package detector decides whether outcome lines are coloured.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how the report stream is rendered.
type OutputMode int

const (
	// ModeAuto defers to DetectEnvironment.
	ModeAuto OutputMode = iota
	// ModeColor renders coloured status markers.
	ModeColor
	// ModePlain renders plain text.
	ModePlain
)

// DetectEnvironment returns ModeColor when stdout is a terminal or a CI
// system that renders ANSI, and ModePlain otherwise.
func DetectEnvironment() OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModeColor
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeColor
	}
	return ModePlain
}

// ResolveMode applies the --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		return ModeColor
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}
