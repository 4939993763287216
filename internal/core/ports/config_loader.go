package ports

import (
	"context"

	"go.trai.ch/droid/internal/core/domain"
)

// ConfigLoader defines the interface for loading the raw build configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build file at path. If path is a directory, the nearest
	// build file is discovered by walking up from it.
	Load(ctx context.Context, path string) (*domain.RawConfig, error)
}

// ConfigDecoder turns the content of one build file into a RawConfig.
type ConfigDecoder interface {
	// Decode parses data read from filename.
	Decode(ctx context.Context, filename string, data []byte) (*domain.RawConfig, error)
}
