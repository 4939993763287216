package config

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// YAMLDecoder implements ports.ConfigDecoder for droid.yaml.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAMLDecoder.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses data as a droid.yaml build file. Unknown keys are rejected.
func (d *YAMLDecoder) Decode(_ context.Context, filename string, data []byte) (*domain.RawConfig, error) {
	var file BuildFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "file", filename)
	}

	return file.toRawConfig(filepath.Dir(filename)), nil
}

func (f *BuildFile) toRawConfig(dir string) *domain.RawConfig {
	raw := &domain.RawConfig{
		Dir:           dir,
		Namespace:     f.Namespace,
		ApplicationID: f.ApplicationID,
		Plugins:       f.Plugins,
		SDK: domain.RawSDK{
			Compile: f.SDK.Compile,
			Min:     f.SDK.Min,
			Target:  f.SDK.Target,
		},
		NDKVersion: f.NDKVersion,
		Compile: domain.RawCompileOptions{
			SourceCompatibility:   f.CompileOptions.SourceCompatibility,
			TargetCompatibility:   f.CompileOptions.TargetCompatibility,
			CoreLibraryDesugaring: f.CompileOptions.CoreLibraryDesugaring,
		},
		KotlinJVMTarget: f.KotlinOptions.JVMTarget,
		VersionCode:     f.Version.Code,
		VersionName:     f.Version.Name,
		BuildType:       f.BuildType,
		SourceRoot:      f.Flutter.Source,
	}

	if len(f.BuildTypes) > 0 {
		raw.BuildTypes = make(map[string]domain.RawBuildType, len(f.BuildTypes))
		for name, bt := range f.BuildTypes {
			raw.BuildTypes[name] = domain.RawBuildType{
				SigningConfig:           bt.SigningConfig,
				AcknowledgeDebugSigning: bt.AcknowledgeDebugSigning,
			}
		}
	}

	if len(f.SigningConfigs) > 0 {
		raw.SigningConfigs = make(map[string]domain.RawSigningConfig, len(f.SigningConfigs))
		for name, sc := range f.SigningConfigs {
			raw.SigningConfigs[name] = domain.RawSigningConfig{
				StoreFile:        sc.StoreFile,
				KeyAlias:         sc.KeyAlias,
				StorePasswordEnv: sc.StorePasswordEnv,
				KeyPasswordEnv:   sc.KeyPasswordEnv,
			}
		}
	}

	for _, dep := range f.Dependencies {
		raw.Dependencies = append(raw.Dependencies, domain.RawDependency{
			Configuration: dep.Configuration,
			Coordinate:    dep.Coordinate,
			Group:         dep.Group,
			Name:          dep.Name,
			Version:       dep.Version,
		})
	}

	return raw
}
