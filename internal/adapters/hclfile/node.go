package hclfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/adapters/platform" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/droid/internal/core/ports"
)

// NodeID is the unique identifier for the HCL decoder Graft node.
const NodeID graft.ID = "adapter.hcl_decoder"

func init() {
	graft.Register(graft.Node[*Decoder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{platform.NodeID},
		Run: func(ctx context.Context) (*Decoder, error) {
			provider, err := graft.Dep[ports.PlatformDefaultsProvider](ctx)
			if err != nil {
				return nil, err
			}
			return NewDecoder(provider), nil
		},
	})
}
