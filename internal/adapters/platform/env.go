package platform

import (
	"context"
	"os"

	"go.trai.ch/droid/internal/core/domain"
)

// environmentKeys maps DROID_* variables to the local.properties keys they override.
var environmentKeys = map[string]string{
	KeyCompileSDK:  "DROID_COMPILE_SDK",
	KeyMinSDK:      "DROID_MIN_SDK",
	KeyTargetSDK:   "DROID_TARGET_SDK",
	KeyVersionCode: "DROID_VERSION_CODE",
	KeyVersionName: "DROID_VERSION_NAME",
	KeyNDKVersion:  "DROID_NDK_VERSION",
}

// Env reads defaults from DROID_* environment variables.
type Env struct {
	lookup func(string) (string, bool)
}

// NewEnv creates an Env provider backed by the process environment.
func NewEnv() *Env {
	return &Env{lookup: os.LookupEnv}
}

// NewEnvWithLookup creates an Env provider backed by lookup.
func NewEnvWithLookup(lookup func(string) (string, bool)) *Env {
	return &Env{lookup: lookup}
}

// Defaults implements ports.PlatformDefaultsProvider.
func (e *Env) Defaults(_ context.Context, _ string) (domain.PlatformDefaults, error) {
	return parseDefaults(func(key string) (string, bool) {
		return e.lookup(environmentKeys[key])
	}, "environment")
}
