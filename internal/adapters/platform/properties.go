package platform

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Keys read from local.properties.
const (
	KeyCompileSDK  = "flutter.compileSdkVersion"
	KeyMinSDK      = "flutter.minSdkVersion"
	KeyTargetSDK   = "flutter.targetSdkVersion"
	KeyVersionCode = "flutter.versionCode"
	KeyVersionName = "flutter.versionName"
	KeyNDKVersion  = "flutter.ndkVersion"
)

// Properties reads defaults from the local.properties file next to the build file,
// the file the Flutter tool writes for every Android project.
type Properties struct{}

// NewProperties creates a new Properties provider.
func NewProperties() *Properties {
	return &Properties{}
}

// Defaults implements ports.PlatformDefaultsProvider. A missing file yields zero defaults.
func (p *Properties) Defaults(_ context.Context, dir string) (domain.PlatformDefaults, error) {
	path := filepath.Join(dir, domain.LocalPropertiesFileName)

	//nolint:gosec // Path is the build file directory joined with a constant name
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.PlatformDefaults{}, nil
		}
		return domain.PlatformDefaults{}, zerr.With(zerr.Wrap(err, domain.ErrPlatformDefaultsReadFailed.Error()), "file", path)
	}

	props, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return domain.PlatformDefaults{}, zerr.With(zerr.Wrap(err, domain.ErrPlatformDefaultsReadFailed.Error()), "file", path)
	}

	defaults, err := parseDefaults(props.Get, path)
	if err != nil {
		return domain.PlatformDefaults{}, err
	}
	return defaults, nil
}

// parseDefaults reads the flutter.* keys through lookup. source is reported in errors.
func parseDefaults(lookup func(string) (string, bool), source string) (domain.PlatformDefaults, error) {
	var d domain.PlatformDefaults

	ints := []struct {
		key string
		dst *int
	}{
		{KeyCompileSDK, &d.CompileSDK},
		{KeyMinSDK, &d.MinSDK},
		{KeyTargetSDK, &d.TargetSDK},
		{KeyVersionCode, &d.VersionCode},
	}
	for _, f := range ints {
		raw, ok := lookup(f.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			return domain.PlatformDefaults{}, zerr.With(zerr.With(zerr.With(
				domain.ErrPlatformDefaultsInvalid, "key", f.key), "value", raw), "source", source)
		}
		*f.dst = n
	}

	if v, ok := lookup(KeyVersionName); ok {
		d.VersionName = strings.TrimSpace(v)
	}
	if v, ok := lookup(KeyNDKVersion); ok {
		d.NDKVersion = strings.TrimSpace(v)
	}
	return d, nil
}
