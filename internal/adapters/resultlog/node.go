package resultlog

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the results log sink Graft node.
const NodeID graft.ID = "adapter.sink.resultlog"

func init() {
	graft.Register(graft.Node[*Sink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Sink, error) {
			return NewSink(), nil
		},
	})
}
