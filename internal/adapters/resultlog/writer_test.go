package resultlog_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/adapters/resultlog"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
)

func sampleResult() (*domain.DiffResult, *domain.MatchingContext) {
	result := &domain.DiffResult{
		Primary:    domain.ExportInfo{Filename: "a", ExecutableName: "hello", Functions: 2, Calls: 1},
		Secondary:  domain.ExportInfo{Filename: "b", Functions: 2, Calls: 1},
		Similarity: 0.8,
		Confidence: 0.9,
		Counts: domain.Counts{
			{Name: domain.CountFunctionMatchesNonLibrary, Value: 1},
			{Name: domain.CountBasicBlockMatches, Value: 1},
		},
		Histogram: domain.Histogram{
			"function: name hash matching": 1,
			"function: hash matching":      1,
		},
		FixedPoints: domain.FixedPoints{
			{Primary: 0x1000, Secondary: 0x2000, Step: "function: hash matching", Confidence: 1, Similarity: 1},
			{Primary: 0x1040, Secondary: 0x2040, Step: "function: name hash matching", Confidence: 0.25, Similarity: 0.5},
		},
		Elapsed: 3 * time.Millisecond,
		Created: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	graphs := &domain.MatchingContext{
		Primary: &domain.GraphSlot{FlowGraphs: domain.FlowGraphs{
			{EntryPoint: 0x1000, Name: "main"},
			{EntryPoint: 0x1040, Name: "puts"},
		}},
		Secondary: &domain.GraphSlot{FlowGraphs: domain.FlowGraphs{
			{EntryPoint: 0x2000, Name: "main_1"},
		}},
	}
	return result, graphs
}

func TestSink_Format(t *testing.T) {
	var sink ports.ResultSink = resultlog.NewSink()
	assert.Equal(t, domain.FormatLog, sink.Format())
	assert.Equal(t, ".results", sink.Extension())
}

func TestRender(t *testing.T) {
	result, graphs := sampleResult()

	var buf bytes.Buffer
	require.NoError(t, resultlog.Render(&buf, result, graphs))

	g := goldie.New(t)
	g.Assert(t, "render", buf.Bytes())
}

func TestRender_WithoutGraphs(t *testing.T) {
	result, _ := sampleResult()

	var buf bytes.Buffer
	require.NoError(t, resultlog.Render(&buf, result, nil))
	assert.Contains(t, buf.String(), "00001000 -")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRender_WriteError(t *testing.T) {
	result, graphs := sampleResult()

	err := resultlog.Render(failingWriter{}, result, graphs)
	assert.ErrorContains(t, err, "disk full")
}

func TestSink_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a_vs_b.results")
	result, graphs := sampleResult()

	require.NoError(t, resultlog.NewSink().Write(path, result, graphs))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("testdata", "render.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestSink_Write_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a_vs_b.results")
	result, graphs := sampleResult()

	err := resultlog.NewSink().Write(path, result, graphs)
	assert.ErrorContains(t, err, "failed to create results log")
}
