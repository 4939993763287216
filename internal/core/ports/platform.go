package ports

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
)

// PlatformDefaultsProvider supplies SDK and version defaults for a project directory.
//
//go:generate mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type PlatformDefaultsProvider interface {
	Defaults(ctx context.Context, dir string) (domain.PlatformDefaults, error)
}
