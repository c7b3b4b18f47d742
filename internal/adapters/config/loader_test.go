package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/differ/internal/adapters/config"
	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func allSteps(string) bool { return true }

func newLoader(t *testing.T, supported config.StepFilter) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	l := config.NewLoader(log, supported)
	l.SetUserDir(func() (string, error) { return "", errors.New("no home") })
	return l
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "differ.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := newLoader(t, allSteps).Load("")
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Threads)
	assert.Equal(t, 65536, cfg.CacheSize)
	assert.Empty(t, cfg.Exporter.Executable)
	assert.Contains(t, cfg.Exporter.Args, "-OBinExportModule:{output}")

	require.Len(t, cfg.Steps.Function, 17)
	require.Len(t, cfg.Steps.BasicBlock, 18)
	assert.Equal(t, domain.MatchingStep{Algorithm: "function: name hash matching", Confidence: 1.0}, cfg.Steps.Function[0])
	assert.Equal(t, domain.MatchingStep{Algorithm: "basicBlock: jump sequence matching", Confidence: 0.0}, cfg.Steps.BasicBlock[17])
	assert.InDelta(t, 0.1, cfg.Steps.Confidence("function: call sequence matching(exact)"), 1e-9)
}

func TestLoad_UnsupportedStepsAreSkipped(t *testing.T) {
	supported := func(algorithm string) bool {
		return algorithm == "function: hash matching" || algorithm == "basicBlock: entry point matching"
	}

	cfg, err := newLoader(t, supported).Load("")
	require.NoError(t, err)

	assert.Equal(t, []domain.MatchingStep{{Algorithm: "function: hash matching", Confidence: 1.0}}, cfg.Steps.Function)
	assert.Equal(t, []domain.MatchingStep{{Algorithm: "basicBlock: entry point matching", Confidence: 0.2}}, cfg.Steps.BasicBlock)
}

func TestLoad_NoUsableSteps(t *testing.T) {
	supported := func(algorithm string) bool { return strings.HasPrefix(algorithm, "function:") }

	_, err := newLoader(t, supported).Load("")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoMatchingSteps.Error())
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
threads: 4
cache:
  size: 128
exporter:
  executable: /opt/ida/idat64
matching:
  function:
    - { algorithm: "function: instruction count", confidence: 0.5 }
`)

	cfg, err := newLoader(t, allSteps).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, "/opt/ida/idat64", cfg.Exporter.Executable)
	assert.Contains(t, cfg.Exporter.Args, "-A", "unset args keep the defaults")
	assert.Equal(t, []domain.MatchingStep{{Algorithm: "function: instruction count", Confidence: 0.5}}, cfg.Steps.Function)
	assert.Len(t, cfg.Steps.BasicBlock, 18, "empty list keeps the defaults")
}

func TestLoad_ZeroCacheSizeMeansDefault(t *testing.T) {
	cfg, err := newLoader(t, allSteps).Load(writeConfig(t, "cache:\n  size: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCacheSize, cfg.CacheSize)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := newLoader(t, allSteps).Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Len(t, cfg.Steps.Function, 17)
}

func TestLoad_UserConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "differ"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "differ", "differ.yaml"), []byte("threads: 2\n"), 0o600))

	l := newLoader(t, allSteps)
	l.SetUserDir(func() (string, error) { return dir, nil })

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Threads)
}

func TestLoad_MissingUserConfigIsIgnored(t *testing.T) {
	l := newLoader(t, allSteps)
	l.SetUserDir(func() (string, error) { return t.TempDir(), nil })

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Threads)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "negative threads", content: "threads: -1\n", want: domain.ErrInvalidThreads},
		{name: "negative cache size", content: "cache:\n  size: -5\n", want: domain.ErrInvalidCacheSize},
		{
			name:    "confidence above one",
			content: "matching:\n  function:\n    - { algorithm: \"function: hash matching\", confidence: 1.5 }\n",
			want:    domain.ErrInvalidConfidence,
		},
		{
			name:    "negative confidence",
			content: "matching:\n  basic_block:\n    - { algorithm: \"basicBlock: entry point matching\", confidence: -0.1 }\n",
			want:    domain.ErrInvalidConfidence,
		},
		{name: "unknown key", content: "thread: 4\n", want: domain.ErrConfigParseFailed},
		{name: "malformed yaml", content: "threads: [1\n", want: domain.ErrConfigParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(t, allSteps).Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want.Error())
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := newLoader(t, allSteps).Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}
