package ports

import "go.trai.ch/droid/internal/core/domain"

// Resolver validates a raw configuration against platform defaults.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	// Resolve returns the build descriptor or a *domain.ConfigurationError.
	Resolve(raw domain.RawConfig, defaults domain.PlatformDefaults) (domain.BuildDescriptor, error)
}
