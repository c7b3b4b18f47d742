// Package database persists diff results as JSON documents.
package database

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/differ/internal/core/domain"
	"go.trai.ch/zerr"
)

// Version is the schema version of written documents.
const Version = 1

// Document is the persisted form of one diffed pair.
type Document struct {
	Version    int               `json:"version"`
	Created    time.Time         `json:"created"`
	Elapsed    time.Duration     `json:"elapsed_ns"`
	Primary    domain.ExportInfo `json:"primary"`
	Secondary  domain.ExportInfo `json:"secondary"`
	Similarity float64           `json:"similarity"`
	Confidence float64           `json:"confidence"`
	Counts     domain.Counts     `json:"counts"`
	Histogram  domain.Histogram  `json:"histogram"`
	Functions  []FunctionMatch   `json:"functions"`
}

// FunctionMatch is one matched function pair.
type FunctionMatch struct {
	PrimaryAddress   uint64  `json:"primary_address"`
	PrimaryName      string  `json:"primary_name,omitzero"`
	SecondaryAddress uint64  `json:"secondary_address"`
	SecondaryName    string  `json:"secondary_name,omitzero"`
	Step             string  `json:"step"`
	Similarity       float64 `json:"similarity"`
	Confidence       float64 `json:"confidence"`
	BasicBlocks      int     `json:"basic_block_matches"`
}

// Sink implements ports.ResultSink for domain.FormatBinary.
type Sink struct{}

// NewSink creates a new Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Format returns domain.FormatBinary.
func (s *Sink) Format() domain.OutputFormat {
	return domain.FormatBinary
}

// Extension returns domain.DatabaseExtension.
func (s *Sink) Extension() string {
	return domain.DatabaseExtension
}

// Write stores result at path. The file is replaced atomically so that an
// interrupted run never leaves a truncated database behind.
func (s *Sink) Write(path string, result *domain.DiffResult, graphs *domain.MatchingContext) error {
	doc := NewDocument(result, graphs)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// Load reads a document written by Write.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read diff database"), "path", path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal diff database"), "path", path)
	}
	return &doc, nil
}

// NewDocument builds the persisted form of result. Function names are taken from graphs when available.
func NewDocument(result *domain.DiffResult, graphs *domain.MatchingContext) *Document {
	doc := &Document{
		Version:    Version,
		Created:    result.Created,
		Elapsed:    result.Elapsed,
		Primary:    result.Primary,
		Secondary:  result.Secondary,
		Similarity: result.Similarity,
		Confidence: result.Confidence,
		Counts:     result.Counts,
		Histogram:  result.Histogram,
		Functions:  make([]FunctionMatch, 0, len(result.FixedPoints)),
	}

	var primaryNames, secondaryNames map[uint64]string
	if graphs != nil {
		primaryNames = names(graphs.Primary)
		secondaryNames = names(graphs.Secondary)
	}

	for _, fp := range result.FixedPoints {
		doc.Functions = append(doc.Functions, FunctionMatch{
			PrimaryAddress:   fp.Primary,
			PrimaryName:      primaryNames[fp.Primary],
			SecondaryAddress: fp.Secondary,
			SecondaryName:    secondaryNames[fp.Secondary],
			Step:             fp.Step,
			Similarity:       fp.Similarity,
			Confidence:       fp.Confidence,
			BasicBlocks:      len(fp.BasicBlocks),
		})
	}
	return doc
}

func names(slot *domain.GraphSlot) map[uint64]string {
	if slot == nil {
		return nil
	}
	m := make(map[uint64]string, len(slot.FlowGraphs))
	for _, fg := range slot.FlowGraphs {
		m[fg.EntryPoint] = fg.Name
	}
	return m
}
