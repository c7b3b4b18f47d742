package batch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/engine/cancel"
	"go.trai.ch/differ/internal/engine/output"
	"go.trai.ch/differ/internal/engine/queue"
	"go.trai.ch/differ/internal/engine/worker"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configure one batch run.
type Options struct {
	// InputDir holds the exports and the disassembler databases to export.
	InputDir string
	// Reference restricts the run to pairs whose primary is this export.
	Reference string
	// OutputDir receives the exports and the results. It must exist.
	OutputDir string
	// Threads is the number of workers. Zero or less means one per CPU.
	Threads int
	Steps   domain.MatchingSteps
	Chain   *output.Chain
	// ExportOnly stops the run after the export phase.
	ExportOnly bool
}

// Coordinator runs batch and single-pair diffs.
type Coordinator struct {
	deps      worker.Deps
	collector ports.ExportCollector
	exporter  ports.Exporter
	signal    *cancel.Signal

	now func() time.Time
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(
	deps worker.Deps,
	collector ports.ExportCollector,
	exporter ports.Exporter,
	signal *cancel.Signal,
) *Coordinator {
	return &Coordinator{
		deps:      deps,
		collector: collector,
		exporter:  exporter,
		signal:    signal,
		now:       time.Now,
	}
}

// Run diffs every pair of exports in opts.InputDir. Precondition failures are
// returned before any worker starts; per-pair failures are only reported.
func (c *Coordinator) Run(ctx context.Context, opts Options) (worker.Stats, error) {
	inputDir, err := absDir(opts.InputDir, domain.ErrInputDirectoryInvalid)
	if err != nil {
		return worker.Stats{}, err
	}
	outputDir, err := absDir(opts.OutputDir, domain.ErrOutputDirectoryInvalid)
	if err != nil {
		return worker.Stats{}, err
	}

	plan, err := c.collector.Collect(inputDir)
	if err != nil {
		return worker.Stats{}, err
	}

	exports := append([]string(nil), plan.Exports...)
	exports = append(exports, c.export(ctx, inputDir, outputDir, plan.Inputs)...)

	if opts.ExportOnly {
		return worker.Stats{}, nil
	}
	if len(exports) == 0 {
		return worker.Stats{}, domain.Annotate(domain.ErrNoExports, "path", inputDir)
	}

	reference, err := referenceName(inputDir, opts.Reference)
	if err != nil {
		return worker.Stats{}, err
	}
	pairs := BuildPairs(exports, reference)

	start := c.now()
	stats := c.runWorkers(ctx, queue.New(pairs), opts.Threads, worker.Job{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Steps:     opts.Steps,
		Chain:     opts.Chain,
		Signal:    c.signal,
	})
	c.deps.Reporter.Summary(stats.Total(), "pairs diffed", c.now().Sub(start))

	return stats, nil
}

// DiffPair diffs a single pair of exports given by path.
func (c *Coordinator) DiffPair(ctx context.Context, primary, secondary string, opts Options) (worker.Stats, error) {
	outputDir, err := absDir(opts.OutputDir, domain.ErrOutputDirectoryInvalid)
	if err != nil {
		return worker.Stats{}, err
	}

	q := queue.New([]domain.FilePair{domain.NewFilePair(primary, secondary)})
	stats := c.runWorkers(ctx, q, 1, worker.Job{
		OutputDir: outputDir,
		Steps:     opts.Steps,
		Chain:     opts.Chain,
		Signal:    c.signal,
	})
	if stats.Failed > 0 {
		return stats, domain.ErrPairFailed
	}
	return stats, nil
}

func (c *Coordinator) runWorkers(ctx context.Context, q *queue.Queue, threads int, job worker.Job) worker.Stats {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	threads = min(threads, q.Len())
	if c.signal.Requested() {
		return worker.Stats{}
	}

	results := make([]worker.Stats, threads)
	var g errgroup.Group
	for i := range threads {
		w := worker.New(i+1, c.deps, job)
		g.Go(func() error {
			results[i] = w.Run(ctx, q)
			return nil
		})
	}
	_ = g.Wait()

	var total worker.Stats
	for _, s := range results {
		total = total.Add(s)
	}
	return total
}

// export runs the disassembler on every non-empty input and returns the
// successful exports as paths relative to inputDir.
func (c *Coordinator) export(ctx context.Context, inputDir, outputDir string, inputs []string) []string {
	start := c.now()

	paths := make([]string, 0, len(inputs))
	for _, input := range inputs {
		path := filepath.Join(inputDir, input)
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			c.deps.Reporter.Warn("skipping empty file " + path)
			continue
		}
		paths = append(paths, path)
	}

	var exports []string
	if len(paths) > 0 {
		for result := range c.exporter.Export(ctx, paths, outputDir) {
			if result.Err != nil {
				c.deps.Reporter.ExportFailed(result)
			} else {
				c.deps.Reporter.ExportCompleted(result)
				if rel, err := filepath.Rel(inputDir, result.Output); err == nil {
					exports = append(exports, rel)
				}
			}
			if c.signal.Requested() {
				break
			}
		}
	}

	c.deps.Reporter.Summary(len(exports), "files exported", c.now().Sub(start))
	return exports
}

func absDir(path string, sentinel error) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
	}
	if !info.IsDir() {
		return "", zerr.With(sentinel, "path", path)
	}
	return abs, nil
}

// referenceName maps the reference export to the name it has inside inputDir.
func referenceName(inputDir, reference string) (string, error) {
	if reference == "" {
		return "", nil
	}
	if !filepath.IsAbs(reference) && !strings.ContainsRune(reference, filepath.Separator) {
		return reference, nil
	}
	abs, err := filepath.Abs(reference)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidInputs.Error()), "path", reference)
	}
	rel, err := filepath.Rel(inputDir, abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidInputs.Error()), "path", reference)
	}
	return rel, nil
}
