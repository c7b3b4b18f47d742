package ports

import (
	"time"

	"go.trai.ch/differ/internal/core/domain"
)

// Reporter is the operator-facing outcome stream. Implementations must be safe for concurrent use.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Message prints an informational line.
	Message(msg string)
	// Warn prints a warning line.
	Warn(msg string)
	// PairCompleted prints the outcome line of a successfully diffed pair.
	PairCompleted(summary domain.PairSummary)
	// PairFailed prints the outcome line of a failed pair.
	PairFailed(pair domain.FilePair, err error)
	// ExportCompleted prints the outcome of one export.
	ExportCompleted(result domain.ExportResult)
	// ExportFailed prints a failed export.
	ExportFailed(result domain.ExportResult)
	// Summary prints the aggregate line of a phase, e.g. "12 pairs diffed in 3s".
	Summary(count int, noun string, elapsed time.Duration)
}
