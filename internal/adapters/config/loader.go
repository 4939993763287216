// Package config provides the build file loader for droid.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.ConfigLoader.
// It discovers the nearest build file and hands it to the decoder registered for its extension.
type Loader struct {
	Logger   ports.Logger
	FS       FileSystem
	decoders map[string]ports.ConfigDecoder
}

// NewLoader creates a new Loader that reads droid.yaml itself and delegates droid.hcl to hclDecoder.
func NewLoader(logger ports.Logger, fsys FileSystem, hclDecoder ports.ConfigDecoder) *Loader {
	yamlDecoder := NewYAMLDecoder()
	return &Loader{
		Logger: logger,
		FS:     fsys,
		decoders: map[string]ports.ConfigDecoder{
			".yaml": yamlDecoder,
			".yml":  yamlDecoder,
			".hcl":  hclDecoder,
		},
	}
}

// Load reads the build file at path. If path is a directory, the nearest build file
// in it or one of its parents is used.
func (l *Loader) Load(ctx context.Context, path string) (*domain.RawConfig, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	decoder, ok := l.decoders[filepath.Ext(configPath)]
	if !ok || decoder == nil {
		return nil, zerr.With(domain.ErrUnsupportedConfigFormat, "file", configPath)
	}

	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "file", configPath)
	}

	return decoder.Decode(ctx, configPath, data)
}

func (l *Loader) findConfiguration(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	isDir, err := l.FS.IsDir(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", absPath)
		}
		return "", zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if !isDir {
		return absPath, nil
	}

	currentDir := absPath
	for {
		if found := l.buildFileIn(currentDir); found != "" {
			return found, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", absPath)
}

// buildFileIn returns the highest priority build file in dir, or "" if there is none.
func (l *Loader) buildFileIn(dir string) string {
	var found string
	for _, name := range domain.BuildFileNames() {
		candidate := filepath.Join(dir, name)
		if _, err := l.FS.Stat(candidate); err != nil {
			continue
		}
		if found != "" {
			l.Logger.Warn(fmt.Sprintf("%s ignored, %s takes precedence", candidate, filepath.Base(found)))
			continue
		}
		found = candidate
	}
	return found
}
