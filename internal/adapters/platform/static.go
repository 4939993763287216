// Package platform provides the platform defaults that fill in values a build file leaves out.
package platform

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
)

// Static always returns the same defaults.
type Static struct {
	defaults domain.PlatformDefaults
}

// NewStatic creates a Static provider for defaults.
func NewStatic(defaults domain.PlatformDefaults) *Static {
	return &Static{defaults: defaults}
}

// BuiltinDefaults are the levels shipped with the current Flutter Android tooling.
func BuiltinDefaults() domain.PlatformDefaults {
	return domain.PlatformDefaults{
		CompileSDK: 35,
		MinSDK:     21,
		TargetSDK:  35,
		NDKVersion: "27.0.12077973",
	}
}

// Defaults implements ports.PlatformDefaultsProvider.
func (s *Static) Defaults(_ context.Context, _ string) (domain.PlatformDefaults, error) {
	return s.defaults, nil
}
