package ports

import "go.trai.ch/differ/internal/core/domain"

//go:generate mockgen -source=decode_cache.go -destination=mocks/mock_decode_cache.go -package=mocks

// DecodeCache memoizes decoded instructions. A cache is owned by a single worker
// and is not safe for concurrent use.
type DecodeCache interface {
	Get(key uint64) (*domain.Instruction, bool)
	Add(key uint64, instruction *domain.Instruction)
	// Clear drops every entry.
	Clear()
	Len() int
}

// DecodeCacheFactory creates one DecodeCache per worker.
type DecodeCacheFactory interface {
	New() DecodeCache
}
