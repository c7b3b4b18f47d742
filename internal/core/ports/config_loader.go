package ports

import "go.trai.ch/differ/internal/core/domain"

// ConfigLoader defines the interface for loading the diff configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the built-in defaults overlaid with the file at path.
	// An empty path loads the defaults only.
	Load(path string) (*domain.Config, error)
}
