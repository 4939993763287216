package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/core/ports"
)

// NodeID is the unique identifier for the platform defaults Graft node.
const NodeID graft.ID = "adapter.platform_defaults"

func init() {
	graft.Register(graft.Node[ports.PlatformDefaultsProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PlatformDefaultsProvider, error) {
			return NewLayered(NewStatic(BuiltinDefaults()), NewProperties(), NewEnv()), nil
		},
	})
}
