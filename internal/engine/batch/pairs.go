// Package batch coordinates a batch diff: export, pair enumeration and the worker pool.
package batch

import "go.trai.ch/differ/internal/core/domain"

// BuildPairs enumerates every ordered pair of distinct exports, grouped by primary.
// A non-empty reference keeps only the pairs whose primary is the reference.
func BuildPairs(exports []string, reference string) []domain.FilePair {
	var pairs []domain.FilePair
	for i, primary := range exports {
		if reference != "" && reference != primary {
			continue
		}
		for j, secondary := range exports {
			if i == j {
				continue
			}
			pairs = append(pairs, domain.NewFilePair(primary, secondary))
		}
	}
	return pairs
}
