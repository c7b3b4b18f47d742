package ports

import (
	"context"
	"iter"

	"go.trai.ch/differ/internal/core/domain"
)

//go:generate mockgen -source=exporter.go -destination=mocks/mock_exporter.go -package=mocks

// Exporter turns disassembler databases into exports.
type Exporter interface {
	// Export exports every input into outputDir. One result is yielded per input, in completion order.
	Export(ctx context.Context, inputs []string, outputDir string) iter.Seq[domain.ExportResult]
}

// ExportCollector lists what a batch directory contains.
type ExportCollector interface {
	// Collect returns the exports in dir and the disassembler databases that have no export yet.
	Collect(dir string) (domain.ExportPlan, error)
}
