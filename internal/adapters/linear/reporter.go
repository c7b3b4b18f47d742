// Package linear provides the line-oriented report stream for diff outcomes.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/differ/internal/adapters/detector"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/ui/palette"
)

// Reporter implements ports.Reporter. Outcome lines go to stdout, warnings and
// failures to stderr. Every call writes whole lines under one lock so that
// lines from concurrent workers never interleave.
type Reporter struct {
	stdout *palette.Writer
	stderr *palette.Writer

	mu sync.Mutex
}

// NewReporter creates a Reporter. Nil writers default to os.Stdout and os.Stderr.
func NewReporter(stdout, stderr io.Writer, mode detector.OutputMode) *Reporter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	if mode == detector.ModeAuto {
		mode = detector.DetectEnvironment()
	}
	profile := palette.Profile(mode == detector.ModePlain)

	return &Reporter{
		stdout: palette.NewWriter(stdout, profile),
		stderr: palette.NewWriter(stderr, profile),
	}
}

// Message prints an informational line.
func (r *Reporter) Message(msg string) {
	r.println(r.stdout, msg)
}

// Warn prints a warning line.
func (r *Reporter) Warn(msg string) {
	r.println(r.stderr, r.stderr.Paint(palette.Caution, "Warning:")+" "+msg)
}

// PairCompleted prints the similarity line followed by one line per count.
func (r *Reporter) PairCompleted(s domain.PairSummary) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s):\tsimilarity:\t%s\tconfidence:\t%s",
		r.stdout.Marker(palette.Success), s.Pair, humanDuration(s.Elapsed), formatScore(s.Similarity), formatScore(s.Confidence))
	for _, c := range s.Counts {
		fmt.Fprintf(&b, "\n\t%s:\t%d", c.Name, c.Value)
	}
	r.println(r.stdout, b.String())
}

// PairFailed prints the failure line of a pair.
func (r *Reporter) PairFailed(pair domain.FilePair, err error) {
	r.println(r.stderr, r.stderr.Marker(palette.Failure)+" "+domain.FailureMessage(pair, err))
}

// ExportCompleted prints the outcome of one export.
func (r *Reporter) ExportCompleted(result domain.ExportResult) {
	r.println(r.stdout, fmt.Sprintf("%s %s exported in %s", r.stdout.Marker(palette.Success), result.Input, humanDuration(result.Elapsed)))
}

// ExportFailed prints a failed export.
func (r *Reporter) ExportFailed(result domain.ExportResult) {
	r.println(r.stderr, fmt.Sprintf("%s while exporting %s: %v", r.stderr.Marker(palette.Failure), result.Input, result.Err))
}

// Summary prints the aggregate line of a phase.
func (r *Reporter) Summary(count int, noun string, elapsed time.Duration) {
	r.println(r.stdout, fmt.Sprintf("%d %s in %s", count, noun, humanDuration(elapsed)))
}

func (r *Reporter) println(out *palette.Writer, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = out.WriteLine(line)
}

// humanDuration rounds d to a precision that suits its magnitude.
func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return d.Round(time.Second).String()
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Millisecond).String()
	default:
		return d.String()
	}
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
