// Package fingerprint computes stable hashes of build descriptors.
package fingerprint

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher implements ports.Fingerprinter with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes every field of d in a fixed order and returns the hash as 16 hex digits.
// Equal descriptors always have equal fingerprints.
func (h *Hasher) Fingerprint(d domain.BuildDescriptor) string {
	hasher := xxhash.New()

	writeFields(hasher, d.Namespace(), d.ApplicationID(), d.BuildType().String(), d.SourceRoot())
	writeFields(hasher, d.Plugins()...)

	sdk := d.SDK()
	writeFields(hasher,
		strconv.Itoa(sdk.Compile),
		strconv.Itoa(sdk.Min),
		strconv.Itoa(sdk.Target),
		d.NDKVersion(),
		d.LanguageLevel().String(),
		strconv.FormatBool(d.Desugaring()),
	)

	version := d.Version()
	writeFields(hasher, strconv.Itoa(version.Code), version.Name)

	s := d.Signing()
	writeFields(hasher,
		s.Strategy.String(),
		s.Config,
		s.StoreFile,
		s.KeyAlias,
		s.StorePasswordEnv,
		s.KeyPasswordEnv,
		strconv.FormatBool(s.Acknowledged),
	)

	for _, dep := range d.Dependencies() {
		writeFields(hasher, dep.Configuration, dep.Group, dep.Name, dep.Version)
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// writeFields writes each value followed by a 0 separator, then a section separator.
func writeFields(hasher *xxhash.Digest, values ...string) {
	for _, v := range values {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
