// Package worker implements the diff worker that drains the shared pair queue.
package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/engine/cancel"
	"go.trai.ch/differ/internal/engine/output"
	"go.trai.ch/differ/internal/engine/queue"
	"go.trai.ch/zerr"
)

// Deps are the collaborators shared by every worker of a run.
type Deps struct {
	Reader   ports.Reader
	Engine   ports.DiffEngine
	Scorer   ports.Scorer
	Caches   ports.DecodeCacheFactory
	Reporter ports.Reporter
	Logger   ports.Logger
	Tracer   ports.Tracer
}

// Job is the per-run configuration of a worker.
type Job struct {
	// InputDir is joined with the pair's filenames. Empty means the names are paths.
	InputDir  string
	OutputDir string
	Steps     domain.MatchingSteps
	Chain     *output.Chain
	Signal    *cancel.Signal
}

// Stats counts the outcomes of the pairs a worker processed.
type Stats struct {
	Diffed int
	Failed int
}

// Add returns the sum of both stats.
func (s Stats) Add(other Stats) Stats {
	return Stats{Diffed: s.Diffed + other.Diffed, Failed: s.Failed + other.Failed}
}

// Total returns the number of pairs processed.
func (s Stats) Total() int {
	return s.Diffed + s.Failed
}

// Worker diffs pairs one at a time. It owns its decode cache and both graph
// slots, so consecutive pairs that share an export skip reading it again.
type Worker struct {
	id   int
	deps Deps
	job  Job

	cache     ports.DecodeCache
	primary   domain.GraphSlot
	secondary domain.GraphSlot
	last      domain.FilePair

	now func() time.Time
}

// New creates a worker. Every worker gets its own decode cache.
func New(id int, deps Deps, job Job) *Worker {
	return &Worker{
		id:    id,
		deps:  deps,
		job:   job,
		cache: deps.Caches.New(),
		now:   time.Now,
	}
}

// Run pops pairs until the queue is empty, ctx is done or a shutdown was requested.
// A failed pair is reported and never stops the loop.
func (w *Worker) Run(ctx context.Context, q *queue.Queue) Stats {
	var stats Stats
	for {
		pair, ok := q.Pop()
		if !ok {
			return stats
		}

		if err := w.process(ctx, pair); err != nil {
			stats.Failed++
		} else {
			stats.Diffed++
		}

		if w.job.Signal.Requested() || ctx.Err() != nil {
			return stats
		}
	}
}

func (w *Worker) process(ctx context.Context, pair domain.FilePair) (err error) {
	start := w.now()

	ctx, span := w.deps.Tracer.Start(ctx, "diff "+pair.String())
	span.SetAttribute(domain.AttrPrimary, pair.Primary)
	span.SetAttribute(domain.AttrSecondary, pair.Secondary)
	span.SetAttribute(domain.AttrWorker, w.id)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = domain.Annotate(domain.ErrPairPanicked, "panic", fmt.Sprint(r))
		}
		if err != nil {
			span.RecordError(err)
			w.last = domain.FilePair{}
			w.deps.Reporter.PairFailed(pair, err)
		}
	}()

	// Instructions decoded for an export stay valid while one side keeps it loaded.
	reused := pair.Primary == w.last.Primary || pair.Secondary == w.last.Secondary
	if !reused {
		w.cache.Clear()
	}
	span.SetAttribute(domain.AttrCacheReuse, reused)

	if err := w.load(ctx, pair); err != nil {
		return err
	}

	mc := &domain.MatchingContext{Primary: &w.primary, Secondary: &w.secondary}
	result, err := w.diff(ctx, pair, mc)
	if err != nil {
		return err
	}
	result.Created = start
	result.Elapsed = w.now().Sub(start)

	w.deps.Logger.Debug("Writing results")
	_, writeSpan := w.deps.Tracer.Start(ctx, "write")
	err = w.job.Chain.Write(w.job.OutputDir, result, mc)
	if err != nil {
		writeSpan.RecordError(err)
		writeSpan.End()
		return err
	}
	writeSpan.End()

	span.SetAttribute(domain.AttrSimilarity, result.Similarity)
	span.SetAttribute(domain.AttrConfidence, result.Confidence)
	span.SetAttribute(domain.AttrMatched, result.Matched)

	summary := result.Summary(pair)
	summary.Elapsed = w.now().Sub(start)
	w.deps.Reporter.PairCompleted(summary)

	w.last = pair
	return nil
}

func (w *Worker) load(ctx context.Context, pair domain.FilePair) error {
	_, span := w.deps.Tracer.Start(ctx, "read")
	defer span.End()

	if err := w.loadSlot(&w.primary, w.last.Primary, pair.Primary); err != nil {
		span.RecordError(err)
		return err
	}
	if err := w.loadSlot(&w.secondary, w.last.Secondary, pair.Secondary); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (w *Worker) loadSlot(slot *domain.GraphSlot, last, next string) error {
	if last == next && slot.CallGraph != nil {
		slot.FlowGraphs.ResetMatches()
		return nil
	}

	*slot = domain.GraphSlot{}
	path := filepath.Join(w.job.InputDir, next)
	w.deps.Logger.Debug("Reading " + next)

	callGraph, flowGraphs, infos, err := w.deps.Reader.Read(path, w.cache)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReadFailed.Error()), "path", path)
	}
	*slot = domain.GraphSlot{CallGraph: callGraph, FlowGraphs: flowGraphs, Infos: infos}
	return nil
}

func (w *Worker) diff(ctx context.Context, pair domain.FilePair, mc *domain.MatchingContext) (*domain.DiffResult, error) {
	w.deps.Logger.Debug("Diffing " + pair.String())

	matchCtx, matchSpan := w.deps.Tracer.Start(ctx, "match")
	fixedPoints, err := w.deps.Engine.Diff(matchCtx, mc, w.job.Steps)
	if err != nil {
		matchSpan.RecordError(err)
		matchSpan.End()
		return nil, zerr.Wrap(err, domain.ErrDiffFailed.Error())
	}
	matchSpan.End()

	_, scoreSpan := w.deps.Tracer.Start(ctx, "score")
	defer scoreSpan.End()

	histogram, counts := w.deps.Scorer.Histogram(mc.Primary.FlowGraphs, mc.Secondary.FlowGraphs, fixedPoints)
	similarity := w.deps.Scorer.Similarity(mc.Primary.CallGraph, mc.Secondary.CallGraph, histogram, counts)
	confidence := w.deps.Scorer.Confidence(histogram)

	primary := mc.Primary.CallGraph.Info()
	primary.Path = pair.Primary
	secondary := mc.Secondary.CallGraph.Info()
	secondary.Path = pair.Secondary

	return &domain.DiffResult{
		Primary:     primary,
		Secondary:   secondary,
		Similarity:  similarity,
		Confidence:  confidence,
		Matched:     len(fixedPoints),
		Counts:      counts,
		Histogram:   histogram,
		FixedPoints: fixedPoints,
	}, nil
}
