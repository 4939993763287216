// Package emit writes descriptor documents for the external build executor.
package emit

import (
	"encoding/json"
	"io"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Emitter implements ports.Emitter.
type Emitter struct{}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit writes doc to w as JSON or YAML.
func (e *Emitter) Emit(w io.Writer, format string, doc domain.DescriptorDocument) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, domain.ErrEmitFailed.Error())
		}
	case domain.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return zerr.Wrap(err, domain.ErrEmitFailed.Error())
		}
		if err := enc.Close(); err != nil {
			return zerr.Wrap(err, domain.ErrEmitFailed.Error())
		}
	default:
		return zerr.With(domain.ErrUnknownOutputFormat, "format", format)
	}
	return nil
}
