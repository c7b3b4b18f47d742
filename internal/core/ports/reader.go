// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/differ/internal/core/domain"

// Reader loads exported binaries.
//
//go:generate mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type Reader interface {
	// Read parses the export at path. Decoded instructions are looked up in and added to cache,
	// so flow graphs of two exports read through the same cache share instruction instances.
	Read(path string, cache DecodeCache) (*domain.CallGraph, domain.FlowGraphs, domain.FlowGraphInfos, error)

	// ReadInfo reads only the metadata of the export at path.
	ReadInfo(path string) (domain.ExportInfo, error)
}
