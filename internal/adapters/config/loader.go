// Package config loads the differ configuration from YAML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// StepFilter reports whether a matching step can be executed.
type StepFilter func(algorithm string) bool

// Loader implements ports.ConfigLoader.
type Loader struct {
	logger    ports.Logger
	supported StepFilter
	// userDir returns the per-user configuration directory used when no path is given.
	userDir func() (string, error)
}

// NewLoader creates a Loader. Steps rejected by supported are dropped.
func NewLoader(logger ports.Logger, supported StepFilter) *Loader {
	return &Loader{
		logger:    logger,
		supported: supported,
		userDir:   os.UserConfigDir,
	}
}

// Load resolves the configuration. The embedded defaults are overlaid with the
// file at path, or with the per-user differ.yaml when path is empty and it exists.
func (l *Loader) Load(path string) (*domain.Config, error) {
	var file File
	if err := decode(bytes.NewReader(defaultConfig), &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	userPath, required := path, true
	if userPath == "" {
		userPath, required = l.discover()
	}
	if userPath != "" {
		user, err := readAndUnmarshalYAML(userPath, required)
		if err != nil {
			return nil, err
		}
		if user != nil {
			l.logger.Debug("Using configuration " + userPath)
			user.overlay(&file)
		}
	}

	return l.resolve(&file)
}

// discover returns the per-user configuration path. It is optional.
func (l *Loader) discover() (string, bool) {
	dir, err := l.userDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(dir, "differ", domain.ConfigFileName), false
}

func (l *Loader) resolve(file *File) (*domain.Config, error) {
	cfg := &domain.Config{
		CacheSize: domain.DefaultCacheSize,
		Exporter: domain.ExporterConfig{
			Executable: file.Exporter.Executable,
			Args:       file.Exporter.Args,
		},
	}

	if file.Threads != nil {
		if *file.Threads < 0 {
			return nil, domain.Annotate(domain.ErrInvalidThreads, "threads", *file.Threads)
		}
		cfg.Threads = *file.Threads
	}
	if file.Cache.Size != nil {
		if *file.Cache.Size < 0 {
			return nil, domain.Annotate(domain.ErrInvalidCacheSize, "cache_size", *file.Cache.Size)
		}
		if *file.Cache.Size > 0 {
			cfg.CacheSize = *file.Cache.Size
		}
	}

	var err error
	if cfg.Steps.Function, err = l.steps("function", file.Matching.Function); err != nil {
		return nil, err
	}
	if cfg.Steps.BasicBlock, err = l.steps("basic_block", file.Matching.BasicBlock); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) steps(level string, dtos []StepDTO) ([]domain.MatchingStep, error) {
	steps := make([]domain.MatchingStep, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Confidence < 0 || dto.Confidence > 1 {
			err := domain.Annotate(domain.ErrInvalidConfidence, "algorithm", dto.Algorithm)
			return nil, zerr.With(err, "confidence", dto.Confidence)
		}
		if l.supported != nil && !l.supported(dto.Algorithm) {
			l.logger.Debug(fmt.Sprintf("Skipping unsupported matching step %q", dto.Algorithm))
			continue
		}
		steps = append(steps, domain.MatchingStep{Algorithm: dto.Algorithm, Confidence: dto.Confidence})
	}
	if len(steps) == 0 {
		return nil, domain.Annotate(domain.ErrNoMatchingSteps, "level", level)
	}
	return steps, nil
}

// readAndUnmarshalYAML reads and parses one configuration file. A missing
// optional file yields (nil, nil).
func readAndUnmarshalYAML(path string, required bool) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := decode(bytes.NewReader(data), &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &file, nil
}

// decode rejects unknown keys so that misspelled settings are not silently ignored.
func decode(r io.Reader, file *File) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
