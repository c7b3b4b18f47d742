package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/core/ports"
)

// CollectorNodeID is the unique identifier for the export collector Graft node.
const CollectorNodeID graft.ID = "adapter.fs.collector"

func init() {
	graft.Register(graft.Node[ports.ExportCollector]{
		ID:        CollectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExportCollector, error) {
			return NewCollector(), nil
		},
	})
}
