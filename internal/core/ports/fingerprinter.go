package ports

import "go.trai.ch/droid/internal/core/domain"

// Fingerprinter computes a stable content hash of a descriptor.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	Fingerprint(d domain.BuildDescriptor) string
}
