package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/adapters/hclfile" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/droid/internal/adapters/logger"  //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/droid/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, hclfile.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			hclDecoder, err := graft.Dep[*hclfile.Decoder](ctx)
			if err != nil {
				return nil, err
			}

			return NewLoader(log, NewOSFS(), hclDecoder), nil
		},
	})
}
