package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingApplicationID is returned when the application identifier is empty.
	ErrMissingApplicationID = zerr.New("application identifier is empty")

	// ErrInvalidApplicationID is returned when an identifier is not in reverse-domain format.
	ErrInvalidApplicationID = zerr.New("identifier must be in reverse-domain format, e.g. com.example.app")

	// ErrEmptyPlugin is returned when a plugin id is blank.
	ErrEmptyPlugin = zerr.New("plugin id is empty")

	// ErrDuplicatePlugin is returned when a plugin id is applied twice.
	ErrDuplicatePlugin = zerr.New("plugin applied more than once")

	// ErrPluginOrder is returned when the Flutter plugin is applied before the Android or Kotlin plugin.
	ErrPluginOrder = zerr.New("flutter plugin must be applied after the android and kotlin plugins")

	// ErrMissingSDKLevel is returned when an SDK level is neither configured nor provided by the platform.
	ErrMissingSDKLevel = zerr.New("sdk level is not configured and has no platform default")

	// ErrInvalidSDKLevel is returned when an SDK level is not a positive integer.
	ErrInvalidSDKLevel = zerr.New("sdk level must be a positive integer")

	// ErrSDKOrdering is returned when min <= target <= compile does not hold.
	ErrSDKOrdering = zerr.New("sdk levels must satisfy min <= target <= compile")

	// ErrInvalidNDKVersion is returned when the NDK version cannot be parsed.
	ErrInvalidNDKVersion = zerr.New("invalid ndk version")

	// ErrUnknownLanguageLevel is returned when a compatibility level is not a recognized Java version.
	ErrUnknownLanguageLevel = zerr.New("unknown language compatibility level, expected one of 1.8, 11, 17, 21")

	// ErrLanguageLevelMismatch is returned when source, target and JVM target levels differ.
	ErrLanguageLevelMismatch = zerr.New("language compatibility levels must be identical for all compiled sources")

	// ErrInvalidVersionCode is returned when the version code is out of range.
	ErrInvalidVersionCode = zerr.New("version code must be between 1 and 2100000000")

	// ErrEmptyVersionName is returned when the version name is blank.
	ErrEmptyVersionName = zerr.New("version name is empty")

	// ErrUnknownBuildType is returned when the selected build type is not recognized.
	ErrUnknownBuildType = zerr.New("unknown build type, expected debug, profile or release")

	// ErrMissingReleaseSigning is returned when a release build has no signing config.
	ErrMissingReleaseSigning = zerr.New("release build has no signing config")

	// ErrUnacknowledgedDebugSigning is returned when a release build is signed with the debug key
	// without acknowledgeDebugSigning.
	ErrUnacknowledgedDebugSigning = zerr.New("release build is signed with the debug key; set acknowledgeDebugSigning to allow it")

	// ErrUnknownSigningConfig is returned when a build type references an undeclared signing config.
	ErrUnknownSigningConfig = zerr.New("signing config is not declared")

	// ErrIncompleteSigningConfig is returned when a signing config misses a store file or key alias.
	ErrIncompleteSigningConfig = zerr.New("signing config is incomplete")

	// ErrMissingDependencyName is returned when a dependency has no name.
	ErrMissingDependencyName = zerr.New("dependency name is empty")

	// ErrMissingDependencyVersion is returned when a dependency has no version.
	ErrMissingDependencyVersion = zerr.New("dependency version is empty")

	// ErrInvalidCoordinate is returned when a dependency coordinate is not group:name:version.
	ErrInvalidCoordinate = zerr.New("dependency coordinate must be group:name:version")

	// ErrInvalidDependencyVersion is returned when a dependency version cannot be parsed.
	ErrInvalidDependencyVersion = zerr.New("invalid dependency version")

	// ErrDuplicateDependency is returned when two dependencies share a name.
	ErrDuplicateDependency = zerr.New("duplicate dependency name")

	// ErrDependencyTooOld is returned when a dependency does not satisfy a minimum version requirement.
	ErrDependencyTooOld = zerr.New("dependency does not satisfy the required version")

	// ErrMissingDesugaringLibrary is returned when desugaring is enabled without a desugaring dependency.
	ErrMissingDesugaringLibrary = zerr.New("core library desugaring is enabled but no coreLibraryDesugaring dependency is declared")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownConfigField is returned when a build file contains a key droid does not know.
	ErrUnknownConfigField = zerr.New("unknown field in build file")

	// ErrDuplicateBlock is returned when a labelled block is declared twice in a build file.
	ErrDuplicateBlock = zerr.New("block declared more than once")

	// ErrConfigNotFound is returned when no build file can be found.
	ErrConfigNotFound = zerr.New("could not find droid.yaml or droid.hcl")

	// ErrUnsupportedConfigFormat is returned when a config file extension has no decoder.
	ErrUnsupportedConfigFormat = zerr.New("unsupported config file format")

	// ErrPlatformDefaultsReadFailed is returned when platform defaults cannot be read.
	ErrPlatformDefaultsReadFailed = zerr.New("failed to read platform defaults")

	// ErrPlatformDefaultsInvalid is returned when a platform default is malformed.
	ErrPlatformDefaultsInvalid = zerr.New("invalid platform default")

	// ErrInvalidRequirement is returned when a minimum version requirement cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid version requirement")

	// ErrUnknownOutputFormat is returned when the descriptor output format is not json or yaml.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected json or yaml")

	// ErrEmitFailed is returned when the descriptor document cannot be written.
	ErrEmitFailed = zerr.New("failed to write descriptor")

	// ErrStoreCreateFailed is returned when the descriptor store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create descriptor store directory")

	// ErrStoreReadFailed is returned when a stored descriptor cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read stored descriptor")

	// ErrStoreUnmarshalFailed is returned when a stored descriptor cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal stored descriptor")

	// ErrStoreMarshalFailed is returned when a descriptor record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal descriptor record")

	// ErrStoreWriteFailed is returned when a descriptor record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write descriptor record")
)

// ConfigurationError reports a validation failure during resolution.
// Key is the configuration key path that caused it, e.g. "sdk.min".
type ConfigurationError struct {
	Key    string
	Reason error
}

// NewConfigurationError creates a ConfigurationError for key.
func NewConfigurationError(key string, reason error) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason}
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	if e.Reason == nil {
		return e.Message()
	}
	return e.Message() + ": " + e.Reason.Error()
}

// Message returns the error message without the cause chain.
func (e *ConfigurationError) Message() string {
	return fmt.Sprintf("invalid configuration at %q", e.Key)
}

// Unwrap returns the reason.
func (e *ConfigurationError) Unwrap() error {
	return e.Reason
}
