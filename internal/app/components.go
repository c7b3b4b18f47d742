package app

import (
	"go.trai.ch/differ/internal/core/ports"
	"go.trai.ch/differ/internal/engine/cancel"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Signal receives the operator's interrupts.
	Signal *cancel.Signal
}
