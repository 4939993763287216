package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/droid/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/emit"        //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/fingerprint" //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/platform"    //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/droid/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			platform.NodeID,
			resolver.NodeID,
			fingerprint.NodeID,
			store.NodeID,
			emit.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	defaults, err := graft.Dep[ports.PlatformDefaultsProvider](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[ports.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	descriptors, err := graft.Dep[ports.DescriptorStore](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, defaults, res, fingerprinter, descriptors, emitter, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
