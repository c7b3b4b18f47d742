package binexport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/core/ports"
)

// NodeID is the unique identifier for the export reader Graft node.
const NodeID graft.ID = "adapter.reader"

func init() {
	graft.Register(graft.Node[ports.Reader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reader, error) {
			return NewReader(), nil
		},
	})
}
