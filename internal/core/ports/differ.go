package ports

import (
	"context"

	"go.trai.ch/differ/internal/core/domain"
)

// DiffEngine matches the functions and basic blocks of two loaded exports.
//
//go:generate mockgen -source=differ.go -destination=mocks/mock_differ.go -package=mocks
type DiffEngine interface {
	// Diff runs the matching steps in order and returns the fixed points it found.
	// The match state is also recorded on the flow graphs of the context.
	Diff(ctx context.Context, mc *domain.MatchingContext, steps domain.MatchingSteps) (domain.FixedPoints, error)

	// Supports reports whether the engine implements the named matching step.
	Supports(algorithm string) bool
}

// Scorer turns fixed points into the reported statistics.
type Scorer interface {
	Histogram(primary, secondary domain.FlowGraphs, fps domain.FixedPoints) (domain.Histogram, domain.Counts)
	Similarity(primary, secondary *domain.CallGraph, histogram domain.Histogram, counts domain.Counts) float64
	Confidence(histogram domain.Histogram) float64
}
