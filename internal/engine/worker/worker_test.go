package worker_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/core/ports/mocks"
	"go.trai.ch/differ/internal/engine/cancel"
	"go.trai.ch/differ/internal/engine/output"
	"go.trai.ch/differ/internal/engine/queue"
	"go.trai.ch/differ/internal/engine/worker"
	"go.uber.org/mock/gomock"
)

const inputDir = "/in"

type workerTestMocks struct {
	reader   *mocks.MockReader
	engine   *mocks.MockDiffEngine
	scorer   *mocks.MockScorer
	cache    *mocks.MockDecodeCache
	reporter *mocks.MockReporter
	sink     *mocks.MockResultSink
	signal   *cancel.Signal
}

// setupWorkerTest creates a worker with optimistic defaults for tracing, logging and scoring.
func setupWorkerTest(t *testing.T) (*worker.Worker, workerTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := workerTestMocks{
		reader:   mocks.NewMockReader(ctrl),
		engine:   mocks.NewMockDiffEngine(ctrl),
		scorer:   mocks.NewMockScorer(ctrl),
		cache:    mocks.NewMockDecodeCache(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		sink:     mocks.NewMockResultSink(ctrl),
		signal:   cancel.New(nil, func(int) {}),
	}

	factory := mocks.NewMockDecodeCacheFactory(ctrl)
	factory.EXPECT().New().Return(m.cache)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	m.scorer.EXPECT().Histogram(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Histogram{"function: hash matching": 1}, domain.Counts{{Name: domain.CountBasicBlockMatches, Value: 3}}).
		AnyTimes()
	m.scorer.EXPECT().Similarity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.75).AnyTimes()
	m.scorer.EXPECT().Confidence(gomock.Any()).Return(0.5).AnyTimes()

	m.sink.EXPECT().Format().Return(domain.FormatBinary).AnyTimes()
	m.sink.EXPECT().Extension().Return(domain.DatabaseExtension).AnyTimes()

	chain := output.NewChain(nil, map[domain.OutputFormat]ports.ResultSink{domain.FormatBinary: m.sink})

	w := worker.New(1, worker.Deps{
		Reader:   m.reader,
		Engine:   m.engine,
		Scorer:   m.scorer,
		Caches:   factory,
		Reporter: m.reporter,
		Logger:   logger,
		Tracer:   tracer,
	}, worker.Job{
		InputDir:  inputDir,
		OutputDir: "/out",
		Chain:     chain,
		Signal:    m.signal,
	})
	return w, m
}

func expectRead(m workerTestMocks, name string) *gomock.Call {
	return m.reader.EXPECT().Read(filepath.Join(inputDir, name), m.cache).
		Return(&domain.CallGraph{Filename: name}, domain.FlowGraphs{{EntryPoint: 0x1000}}, domain.FlowGraphInfos{}, nil)
}

func pairs(specs ...string) []domain.FilePair {
	out := make([]domain.FilePair, 0, len(specs))
	for _, spec := range specs {
		primary, secondary, _ := strings.Cut(spec, ",")
		out = append(out, domain.NewFilePair(primary, secondary))
	}
	return out
}

func TestWorker_ReusesLoadedExports(t *testing.T) {
	w, m := setupWorkerTest(t)

	// (A,B) clears and reads both, (A,C) keeps A and the cache, (D,E) clears and reads both.
	gomock.InOrder(
		m.cache.EXPECT().Clear(),
		expectRead(m, "A"),
		expectRead(m, "B"),
		expectRead(m, "C"),
		m.cache.EXPECT().Clear(),
		expectRead(m, "D"),
		expectRead(m, "E"),
	)
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FixedPoints{}, nil).Times(3)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	var completed []domain.FilePair
	m.reporter.EXPECT().PairCompleted(gomock.Any()).Do(func(s domain.PairSummary) {
		completed = append(completed, s.Pair)
	}).Times(3)

	stats := w.Run(t.Context(), queue.New(pairs("A,B", "A,C", "D,E")))

	assert.Equal(t, worker.Stats{Diffed: 3}, stats)
	assert.Equal(t, pairs("A,B", "A,C", "D,E"), completed)
}

func TestWorker_ResetsMatchesOnReusedSlot(t *testing.T) {
	w, m := setupWorkerTest(t)

	primary := domain.FlowGraphs{{EntryPoint: 0x10}}
	m.cache.EXPECT().Clear()
	m.reader.EXPECT().Read(filepath.Join(inputDir, "A"), m.cache).
		Return(&domain.CallGraph{Filename: "A"}, primary, domain.FlowGraphInfos{}, nil)
	expectRead(m, "B")
	expectRead(m, "C")

	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, mc *domain.MatchingContext, _ domain.MatchingSteps) (domain.FixedPoints, error) {
			fp := &domain.FixedPoint{Primary: 0x10}
			for _, fg := range mc.Primary.FlowGraphs {
				assert.Nil(t, fg.FixedPoint, "match state must be cleared before diffing")
				fg.FixedPoint = fp
			}
			return domain.FixedPoints{fp}, nil
		},
	).Times(2)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.reporter.EXPECT().PairCompleted(gomock.Any()).Times(2)

	stats := w.Run(t.Context(), queue.New(pairs("A,B", "A,C")))
	assert.Equal(t, 2, stats.Diffed)
}

func TestWorker_BuildsResult(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear()
	expectRead(m, "A")
	expectRead(m, "B")
	fps := domain.FixedPoints{{Primary: 0x1000, Secondary: 0x1000, Step: "function: hash matching"}}
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(fps, nil)

	var written *domain.DiffResult
	m.sink.EXPECT().Write("/out/A_vs_B.BinDiff", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, result *domain.DiffResult, _ *domain.MatchingContext) error {
			written = result
			return nil
		},
	)

	var summary domain.PairSummary
	m.reporter.EXPECT().PairCompleted(gomock.Any()).Do(func(s domain.PairSummary) { summary = s })

	w.Run(t.Context(), queue.New(pairs("A,B")))

	require.NotNil(t, written)
	assert.Equal(t, "A", written.Primary.Filename)
	assert.Equal(t, "B", written.Secondary.Filename)
	assert.InDelta(t, 0.75, written.Similarity, 1e-9)
	assert.InDelta(t, 0.5, written.Confidence, 1e-9)
	assert.Equal(t, 1, written.Matched)
	assert.Equal(t, fps, written.FixedPoints)

	assert.Equal(t, domain.NewFilePair("A", "B"), summary.Pair)
	assert.Equal(t, 3, summary.Counts.Get(domain.CountBasicBlockMatches))
}

func TestWorker_FailureIsIsolated(t *testing.T) {
	w, m := setupWorkerTest(t)

	gomock.InOrder(
		m.cache.EXPECT().Clear(),
		expectRead(m, "A"),
		m.reader.EXPECT().Read(filepath.Join(inputDir, "B"), m.cache).Return(nil, nil, nil, errors.New("truncated file")),
		// The failed pair forgets what was loaded, so A is read again.
		m.cache.EXPECT().Clear(),
		expectRead(m, "A"),
		expectRead(m, "C"),
	)
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FixedPoints{}, nil)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var failure error
	m.reporter.EXPECT().PairFailed(domain.NewFilePair("A", "B"), gomock.Any()).Do(func(_ domain.FilePair, err error) {
		failure = err
	})
	m.reporter.EXPECT().PairCompleted(gomock.Any())

	stats := w.Run(t.Context(), queue.New(pairs("A,B", "A,C")))

	assert.Equal(t, worker.Stats{Diffed: 1, Failed: 1}, stats)
	require.Error(t, failure)
	assert.ErrorContains(t, failure, "truncated file")
	assert.True(t, strings.HasPrefix(domain.FailureMessage(domain.NewFilePair("A", "B"), failure), "while diffing A vs B: "))
}

func TestWorker_ResourceExhaustion(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear()
	expectRead(m, "A")
	expectRead(m, "B")
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrResourceExhausted)

	var failure error
	m.reporter.EXPECT().PairFailed(gomock.Any(), gomock.Any()).Do(func(_ domain.FilePair, err error) { failure = err })

	stats := w.Run(t.Context(), queue.New(pairs("A,B")))

	assert.Equal(t, 1, stats.Failed)
	require.ErrorIs(t, failure, domain.ErrResourceExhausted)
	assert.Equal(t, "out of memory diffing A vs B", domain.FailureMessage(domain.NewFilePair("A", "B"), failure))
}

func TestWorker_RecoversFromPanic(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear().Times(2)
	expectRead(m, "A").Times(2)
	expectRead(m, "B")
	expectRead(m, "C")
	gomock.InOrder(
		m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, *domain.MatchingContext, domain.MatchingSteps) (domain.FixedPoints, error) {
				panic("index out of range")
			},
		),
		m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FixedPoints{}, nil),
	)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	var failure error
	m.reporter.EXPECT().PairFailed(domain.NewFilePair("A", "B"), gomock.Any()).Do(func(_ domain.FilePair, err error) { failure = err })
	m.reporter.EXPECT().PairCompleted(gomock.Any())

	stats := w.Run(t.Context(), queue.New(pairs("A,B", "A,C")))

	assert.Equal(t, worker.Stats{Diffed: 1, Failed: 1}, stats)
	assert.ErrorContains(t, failure, domain.ErrPairPanicked.Error())
}

func TestWorker_SinkFailureIsReported(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear()
	expectRead(m, "A")
	expectRead(m, "B")
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FixedPoints{}, nil)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))

	var failure error
	m.reporter.EXPECT().PairFailed(gomock.Any(), gomock.Any()).Do(func(_ domain.FilePair, err error) { failure = err })

	w.Run(t.Context(), queue.New(pairs("A,B")))

	assert.ErrorContains(t, failure, domain.ErrSinkWriteFailed.Error())
}

func TestWorker_StopsWhenShutdownRequested(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear()
	expectRead(m, "A")
	expectRead(m, "B")
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FixedPoints{}, nil)
	m.sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// The in-flight pair finishes, nothing after it starts.
	m.reporter.EXPECT().PairCompleted(gomock.Any()).Do(func(domain.PairSummary) { m.signal.Request() })

	q := queue.New(pairs("A,B", "A,C", "B,A"))
	stats := w.Run(t.Context(), q)

	assert.Equal(t, 1, stats.Diffed)
	assert.Equal(t, 2, q.Len())
}

func TestWorker_FinishesPairWhenShutdownRequestedDuringDiff(t *testing.T) {
	w, m := setupWorkerTest(t)

	m.cache.EXPECT().Clear()
	expectRead(m, "A")
	expectRead(m, "B")
	m.engine.EXPECT().Diff(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.MatchingContext, domain.MatchingSteps) (domain.FixedPoints, error) {
			m.signal.Request()
			return domain.FixedPoints{}, nil
		},
	)
	m.sink.EXPECT().Write(filepath.Join("/out", "A_vs_B"+domain.DatabaseExtension), gomock.Any(), gomock.Any()).Return(nil)
	m.reporter.EXPECT().PairCompleted(gomock.Any())

	q := queue.New(pairs("A,B", "A,C", "B,A"))
	stats := w.Run(t.Context(), q)

	assert.Equal(t, worker.Stats{Diffed: 1}, stats)
	assert.Equal(t, 2, q.Len(), "no pair is dequeued after the request")
}

func TestStats(t *testing.T) {
	s := worker.Stats{Diffed: 2, Failed: 1}.Add(worker.Stats{Diffed: 3})
	assert.Equal(t, worker.Stats{Diffed: 5, Failed: 1}, s)
	assert.Equal(t, 6, s.Total())
}
