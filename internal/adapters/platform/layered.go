package platform

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
)

// Layered merges several providers. Non-zero values of later layers win.
type Layered struct {
	layers []ports.PlatformDefaultsProvider
}

// NewLayered creates a Layered provider from layers, lowest priority first.
func NewLayered(layers ...ports.PlatformDefaultsProvider) *Layered {
	return &Layered{layers: layers}
}

// Defaults implements ports.PlatformDefaultsProvider.
func (l *Layered) Defaults(ctx context.Context, dir string) (domain.PlatformDefaults, error) {
	var merged domain.PlatformDefaults
	for _, layer := range l.layers {
		if err := ctx.Err(); err != nil {
			return domain.PlatformDefaults{}, err
		}
		d, err := layer.Defaults(ctx, dir)
		if err != nil {
			return domain.PlatformDefaults{}, err
		}
		merged = merged.Merge(d)
	}
	return merged, nil
}
