// Package palette renders the coloured markers shared by the report stream and the logger.
package palette

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone classifies a line by the outcome it reports.
type Tone int

const (
	// Muted is used for informational lines.
	Muted Tone = iota
	// Success marks a diffed pair or a finished export.
	Success
	// Failure marks a pair or an export that could not be processed.
	Failure
	// Caution marks warnings.
	Caution
)

var colors = map[Tone]lipgloss.Color{
	Muted:   lipgloss.Color("#667085"),
	Success: lipgloss.Color("#22A06B"),
	Failure: lipgloss.Color("#D93025"),
	Caution: lipgloss.Color("#F59E0B"),
}

var marks = map[Tone]string{
	Success: "✓",
	Failure: "✗",
	Caution: "!",
}

// Mark returns the plain marker of a tone, or "" for Muted.
func (t Tone) Mark() string {
	return marks[t]
}

// Profile returns the profile of an explicitly coloured or plain stream.
// NO_COLOR always wins.
func Profile(plain bool) termenv.Profile {
	if plain || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// EnvProfile detects the profile from the terminal, honouring NO_COLOR.
func EnvProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Writer writes whole lines to a stream in a fixed colour profile.
type Writer struct {
	out *termenv.Output
}

// NewWriter creates a Writer. A nil w writes to os.Stderr.
func NewWriter(w io.Writer, profile termenv.Profile) *Writer {
	if w == nil {
		w = os.Stderr
	}
	return &Writer{
		out: termenv.NewOutput(w, termenv.WithProfile(profile), termenv.WithTTY(true)),
	}
}

// Paint colours s in the tone's colour.
func (w *Writer) Paint(t Tone, s string) string {
	return w.out.String(s).Foreground(w.out.Color(string(colors[t]))).String()
}

// Marker returns the coloured marker of a tone.
func (w *Writer) Marker(t Tone) string {
	if t == Muted {
		return ""
	}
	return w.Paint(t, t.Mark())
}

// WriteLine writes line followed by a newline.
func (w *Writer) WriteLine(line string) error {
	_, err := w.out.WriteString(line + "\n")
	return err
}
