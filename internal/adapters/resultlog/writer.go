// Package resultlog writes the human-readable results log of a diffed pair.
package resultlog

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sink implements ports.ResultSink for domain.FormatLog.
type Sink struct{}

// NewSink creates a new Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Format returns domain.FormatLog.
func (s *Sink) Format() domain.OutputFormat {
	return domain.FormatLog
}

// Extension returns domain.ResultsLogExtension.
func (s *Sink) Extension() string {
	return domain.ResultsLogExtension
}

// Write renders result to path.
func (s *Sink) Write(path string, result *domain.DiffResult, graphs *domain.MatchingContext) error {
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create results log"), "path", path)
	}

	w := bufio.NewWriter(f)
	err = Render(w, result, graphs)
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write results log"), "path", path)
	}
	return nil
}

// Render writes the results log of result to w.
func Render(w io.Writer, result *domain.DiffResult, graphs *domain.MatchingContext) error {
	p := &printer{w: w}

	p.printf("differ results log\n")
	p.printf("created:    %s\n", result.Created.UTC().Format(time.RFC3339))
	p.printf("elapsed:    %s\n", result.Elapsed)
	p.printf("primary:    %s\n", describe(result.Primary))
	p.printf("secondary:  %s\n", describe(result.Secondary))
	p.printf("similarity: %s\n", score(result.Similarity))
	p.printf("confidence: %s\n", score(result.Confidence))

	p.printf("\ncounts:\n")
	for _, c := range result.Counts {
		p.printf("  %-34s %d\n", c.Name+":", c.Value)
	}

	p.printf("\nhistogram:\n")
	for _, step := range slices.Sorted(maps.Keys(result.Histogram)) {
		p.printf("  %-58s %d\n", step+":", result.Histogram[step])
	}

	var primary, secondary map[uint64]*domain.FlowGraph
	if graphs != nil {
		primary, secondary = index(graphs.Primary), index(graphs.Secondary)
	}

	p.printf("\nmatches:\n")
	for _, fp := range result.FixedPoints {
		p.printf("  %08x %-24s %08x %-24s %s %s  %s\n",
			fp.Primary, name(primary, fp.Primary),
			fp.Secondary, name(secondary, fp.Secondary),
			score(fp.Similarity), score(fp.Confidence), fp.Step)
	}

	return p.err
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func describe(info domain.ExportInfo) string {
	s := info.Filename
	if info.ExecutableName != "" {
		s += " (" + info.ExecutableName + ")"
	}
	return fmt.Sprintf("%s: %d functions, %d calls", s, info.Functions, info.Calls)
}

func score(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func index(slot *domain.GraphSlot) map[uint64]*domain.FlowGraph {
	if slot == nil {
		return nil
	}
	m := make(map[uint64]*domain.FlowGraph, len(slot.FlowGraphs))
	for _, fg := range slot.FlowGraphs {
		m[fg.EntryPoint] = fg
	}
	return m
}

func name(fgs map[uint64]*domain.FlowGraph, address uint64) string {
	if fg, ok := fgs[address]; ok && fg.Name != "" {
		return fg.Name
	}
	return "-"
}
