package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/adapters/logger"
	"go.trai.ch/differ/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tp := Setup(NewBridge(log))
			return NewOTelTracerFrom(tp, "differ"), nil
		},
	})
}
