// Package shell runs the disassembler that exports databases before a batch diff.
package shell

import (
	"context"
	"errors"
	"iter"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// OutputPlaceholder is replaced by the export path in the configured arguments.
const OutputPlaceholder = "{output}"

// Exporter implements ports.Exporter using os/exec.
type Exporter struct {
	logger  ports.Logger
	config  domain.ExporterConfig
	threads int
	now     func() time.Time
}

// NewExporter creates an Exporter running at most threads disassemblers at a time.
// Zero or less means one per CPU.
func NewExporter(logger ports.Logger, config domain.ExporterConfig, threads int) *Exporter {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Exporter{
		logger:  logger,
		config:  config,
		threads: threads,
		now:     time.Now,
	}
}

// Export exports every input into outputDir and yields one result per input
// in completion order. Stopping the iteration cancels the exports still running.
func (e *Exporter) Export(ctx context.Context, inputs []string, outputDir string) iter.Seq[domain.ExportResult] {
	return func(yield func(domain.ExportResult) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		results := make(chan domain.ExportResult)
		go func() {
			defer close(results)

			var g errgroup.Group
			g.SetLimit(e.threads)
			for _, input := range inputs {
				if ctx.Err() != nil {
					break
				}
				g.Go(func() error {
					result := e.exportOne(ctx, input, outputDir)
					select {
					case results <- result:
					case <-ctx.Done():
					}
					return nil
				})
			}
			_ = g.Wait()
		}()

		for result := range results {
			if !yield(result) {
				cancel()
				for range results {
				}
				return
			}
		}
	}
}

func (e *Exporter) exportOne(ctx context.Context, input, outputDir string) domain.ExportResult {
	start := e.now()
	base := filepath.Base(input)
	output := filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+domain.ExportExtension)
	result := domain.ExportResult{Input: input, Output: output}

	if e.config.Executable == "" {
		result.Err = domain.Annotate(domain.ErrExporterNotConfigured, "input", input)
		return result
	}

	args := make([]string, 0, len(e.config.Args)+1)
	for _, arg := range e.config.Args {
		args = append(args, strings.ReplaceAll(arg, OutputPlaceholder, output))
	}
	args = append(args, input)

	e.logger.Debug("Exporting " + input)
	cmd := exec.CommandContext(ctx, e.config.Executable, args...) //nolint:gosec // user configured command
	cmd.Stdout = &logWriter{logger: e.logger}
	cmd.Stderr = &logWriter{logger: e.logger}

	err := cmd.Run()
	result.Elapsed = e.now().Sub(start)
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		result.Err = zerr.With(zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "input", input), "exit_code", exitCode)
		return result
	}

	if _, err := os.Stat(output); err != nil {
		result.Err = zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "output", output)
	}
	return result
}

// logWriter forwards disassembler output to the debug log, one message per line.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.SplitSeq(strings.TrimSuffix(string(p), "\n"), "\n") {
		w.logger.Debug(line)
	}
	return len(p), nil
}
