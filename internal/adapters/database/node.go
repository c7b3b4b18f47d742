package database

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the diff database sink Graft node.
const NodeID graft.ID = "adapter.sink.database"

func init() {
	graft.Register(graft.Node[*Sink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Sink, error) {
			return NewSink(), nil
		},
	})
}
