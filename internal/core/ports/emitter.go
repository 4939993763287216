package ports

import (
	"io"

	"go.trai.ch/droid/internal/core/domain"
)

// Emitter writes a descriptor document for the build executor.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Emit writes doc to w in the given format ("json" or "yaml").
	Emit(w io.Writer, format string, doc domain.DescriptorDocument) error
}
