package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor store Graft node.
const NodeID graft.ID = "adapter.descriptor_store"

func init() {
	graft.Register(graft.Node[ports.DescriptorStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorStore, error) {
			return NewStore(), nil
		},
	})
}
