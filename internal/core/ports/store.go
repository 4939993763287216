package ports

import "go.trai.ch/droid/internal/core/domain"

// DescriptorStore defines the interface for storing and retrieving resolution results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DescriptorStore interface {
	// Get retrieves the last record for a build type under root.
	// Returns nil, nil if not found.
	Get(root, buildType string) (*domain.DescriptorRecord, error)

	// Put stores the record.
	Put(root string, record domain.DescriptorRecord) error
}
