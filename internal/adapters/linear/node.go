package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/differ/internal/adapters/detector"
	"go.trai.ch/differ/internal/core/ports"
)

// NodeID is the unique identifier for the reporter Graft node.
const NodeID graft.ID = "adapter.reporter"

// ColorEnv overrides colour detection: "always", "never" or "auto".
const ColorEnv = "DIFFER_COLOR"

func init() {
	graft.Register(graft.Node[ports.Reporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewReporter(nil, nil, detector.ResolveMode(detector.DetectEnvironment(), os.Getenv(ColorEnv))), nil
		},
	})
}
