package differ

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/core/ports"
)

// EngineNodeID is the unique identifier for the diff engine Graft node.
const EngineNodeID graft.ID = "adapter.differ.engine"

func init() {
	graft.Register(graft.Node[ports.DiffEngine]{
		ID:        EngineNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DiffEngine, error) {
			return NewEngine(), nil
		},
	})
}
