// Package hclfile decodes droid.hcl build files.
package hclfile

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Decoder implements ports.ConfigDecoder for droid.hcl.
// Expressions in the file can read the platform defaults of the build file directory as platform.*.
type Decoder struct {
	platform ports.PlatformDefaultsProvider
}

// NewDecoder creates a new Decoder.
func NewDecoder(platform ports.PlatformDefaultsProvider) *Decoder {
	return &Decoder{platform: platform}
}

// Decode parses and evaluates data as a droid.hcl build file.
func (d *Decoder) Decode(ctx context.Context, filename string, data []byte) (*domain.RawConfig, error) {
	dir := filepath.Dir(filename)

	defaults, err := d.platform.Defaults(ctx, dir)
	if err != nil {
		return nil, err
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, domain.ErrConfigParseFailed.Error()), "file", filename)
	}

	var bf buildFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(defaults), &bf); diags.HasErrors() {
		return nil, zerr.With(zerr.Wrap(diags, domain.ErrConfigParseFailed.Error()), "file", filename)
	}

	raw, err := bf.toRawConfig(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", filename)
	}
	return raw, nil
}

func evalContext(defaults domain.PlatformDefaults) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"platform": cty.ObjectVal(map[string]cty.Value{
				"compile_sdk":  cty.NumberIntVal(int64(defaults.CompileSDK)),
				"min_sdk":      cty.NumberIntVal(int64(defaults.MinSDK)),
				"target_sdk":   cty.NumberIntVal(int64(defaults.TargetSDK)),
				"version_code": cty.NumberIntVal(int64(defaults.VersionCode)),
				"version_name": cty.StringVal(defaults.VersionName),
				"ndk_version":  cty.StringVal(defaults.NDKVersion),
			}),
		},
	}
}
