// Package app implements the application layer for differ.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/differ/internal/adapters/decodecache"
	"go.trai.ch/differ/internal/adapters/differ"
	"go.trai.ch/differ/internal/adapters/shell"
	"go.trai.ch/differ/internal/build"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/engine/batch"
	"go.trai.ch/differ/internal/engine/cancel"
	"go.trai.ch/differ/internal/engine/output"
	"go.trai.ch/differ/internal/engine/worker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.Reader
	engine       ports.DiffEngine
	collector    ports.ExportCollector
	logger       ports.Logger
	reporter     ports.Reporter
	tracer       ports.Tracer
	signal       *cancel.Signal
	sinks        map[domain.OutputFormat]ports.ResultSink
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.Reader,
	engine ports.DiffEngine,
	collector ports.ExportCollector,
	log ports.Logger,
	reporter ports.Reporter,
	tracer ports.Tracer,
	signal *cancel.Signal,
	sinks ...ports.ResultSink,
) *App {
	bySink := make(map[domain.OutputFormat]ports.ResultSink, len(sinks))
	for _, sink := range sinks {
		bySink[sink.Format()] = sink
	}
	return &App{
		configLoader: loader,
		reader:       reader,
		engine:       engine,
		collector:    collector,
		logger:       log,
		reporter:     reporter,
		tracer:       tracer,
		signal:       signal,
		sinks:        bySink,
	}
}

// Logo is the version line printed before a diff.
func Logo() string {
	return "differ " + build.Version
}

// DiffOptions configuration for the Diff method.
type DiffOptions struct {
	// Primary is an export, or a directory to batch diff.
	Primary string
	// Secondary is the second export, or the reference export of a batch.
	Secondary string
	// OutputDir defaults to the working directory, or to Primary when it is a directory.
	OutputDir     string
	OutputFormats []string
	ConfigPath    string
	ExportOnly    bool
	NoLogo        bool
	Verbose       bool
}

// verbositySetter is implemented by loggers whose level can change at runtime.
type verbositySetter interface {
	SetVerbose(verbose bool)
}

// Diff diffs two exports, or every pair of exports in a directory.
func (a *App) Diff(ctx context.Context, opts DiffOptions) error {
	if v, ok := a.logger.(verbositySetter); ok {
		v.SetVerbose(opts.Verbose)
	}
	if !opts.NoLogo {
		a.reporter.Message(Logo())
	}

	// 1. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Validate inputs
	formats, err := domain.ParseOutputFormats(opts.OutputFormats)
	if err != nil {
		return err
	}
	if opts.Primary == "" {
		return domain.ErrMissingPrimary
	}
	batchMode := isDir(opts.Primary)

	outputDir, err := resolveOutputDir(opts.OutputDir, opts.Primary, batchMode)
	if err != nil {
		return err
	}

	// 3. Run the coordinator
	coordinator := a.newCoordinator(cfg)
	run := batch.Options{
		OutputDir:  outputDir,
		Threads:    cfg.Threads,
		Steps:      cfg.Steps,
		Chain:      output.NewChain(formats, a.sinks),
		ExportOnly: opts.ExportOnly,
	}

	if batchMode {
		if opts.Secondary != "" && !isFile(opts.Secondary) && !isFile(filepath.Join(opts.Primary, opts.Secondary)) {
			return domain.Annotate(domain.ErrInvalidInputs, "secondary", opts.Secondary)
		}
		run.InputDir = opts.Primary
		run.Reference = opts.Secondary
		_, err := coordinator.Run(ctx, run)
		return err
	}

	if !isFile(opts.Primary) {
		return domain.Annotate(domain.ErrInvalidInputs, "primary", opts.Primary)
	}
	if opts.Secondary == "" || !isFile(opts.Secondary) {
		return domain.Annotate(domain.ErrInvalidInputs, "secondary", opts.Secondary)
	}

	a.describe("primary:   ", opts.Primary)
	a.describe("secondary: ", opts.Secondary)
	_, err = coordinator.DiffPair(ctx, opts.Primary, opts.Secondary, run)
	return err
}

// newCoordinator builds the parts of the pipeline that depend on the configuration.
func (a *App) newCoordinator(cfg *domain.Config) *batch.Coordinator {
	deps := worker.Deps{
		Reader:   a.reader,
		Engine:   a.engine,
		Scorer:   differ.NewScorer(cfg.Steps),
		Caches:   decodecache.NewFactory(cfg.CacheSize),
		Reporter: a.reporter,
		Logger:   a.logger,
		Tracer:   a.tracer,
	}
	exporter := shell.NewExporter(a.logger, cfg.Exporter, cfg.Threads)
	return batch.NewCoordinator(deps, a.collector, exporter, a.signal)
}

func (a *App) describe(label, path string) {
	info, err := a.reader.ReadInfo(path)
	if err != nil {
		// The worker reports the failure when it reads the export.
		a.logger.Debug(fmt.Sprintf("cannot describe %s: %v", path, err))
		return
	}
	a.reporter.Message(fmt.Sprintf("%s%s: %d functions, %d calls", label, info.Filename, info.Functions, info.Calls))
}

// ListExports prints the executable id and name of every export in dir.
func (a *App) ListExports(_ context.Context, dir string) error {
	plan, err := a.collector.Collect(dir)
	if err != nil {
		return err
	}

	for _, name := range plan.Exports {
		path := filepath.Join(dir, name)
		info, err := a.reader.ReadInfo(path)
		if err != nil {
			a.logger.Debug(fmt.Sprintf("skipping %s: %v", path, err))
			continue
		}
		a.reporter.Message(fmt.Sprintf("%s: %s (%s)", path, info.ExecutableID, info.ExecutableName))
	}
	return nil
}

// DumpMdIndices prints the call graph and per-function MD indices of the export at
// path, or of every export in path when it is a directory.
func (a *App) DumpMdIndices(_ context.Context, path string) error {
	paths := []string{path}
	if isDir(path) {
		plan, err := a.collector.Collect(path)
		if err != nil {
			return err
		}
		paths = paths[:0]
		for _, name := range plan.Exports {
			paths = append(paths, filepath.Join(path, name))
		}
	}

	caches := decodecache.NewFactory(0)
	var errs error
	for _, p := range paths {
		callGraph, flowGraphs, _, err := a.reader.Read(p, caches.New())
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		a.reporter.Message(FormatMdIndices(callGraph, flowGraphs))
	}
	return errs
}

// FormatMdIndices renders the MD index dump of one export.
func FormatMdIndices(callGraph *domain.CallGraph, flowGraphs domain.FlowGraphs) string {
	var b strings.Builder
	b.WriteString("\n" + callGraph.Filename + "\n" + strconv.FormatFloat(callGraph.MdIndex, 'g', 6, 64))
	for _, fg := range flowGraphs {
		kind := "Non-library"
		if fg.Library {
			kind = "Library"
		}
		fmt.Fprintf(&b, "\n%08x\t%.12f\t%s", fg.EntryPoint, fg.MdIndex, kind)
	}
	return b.String()
}

func resolveOutputDir(outputDir, primary string, batchMode bool) (string, error) {
	if outputDir == "" {
		if batchMode {
			outputDir = primary
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return "", zerr.Wrap(err, domain.ErrOutputDirectoryInvalid.Error())
			}
			outputDir = wd
		}
	}
	if !isDir(outputDir) {
		return "", domain.Annotate(domain.ErrOutputDirectoryInvalid, "path", outputDir)
	}
	return outputDir, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
