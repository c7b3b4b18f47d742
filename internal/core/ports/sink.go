package ports

import "go.trai.ch/differ/internal/core/domain"

// ResultSink persists the result of one diffed pair.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type ResultSink interface {
	// Format returns the output format the sink produces.
	Format() domain.OutputFormat
	// Extension returns the file extension of the sink's artifacts.
	Extension() string
	// Write persists result to path. graphs holds the loaded exports with their match state.
	Write(path string, result *domain.DiffResult, graphs *domain.MatchingContext) error
}
