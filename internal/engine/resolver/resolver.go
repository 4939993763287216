// Package resolver turns a raw build description and platform defaults into a BuildDescriptor.
package resolver

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	minVersionCode = 1
	maxVersionCode = 2100000000

	defaultVersionCode = 1
	defaultVersionName = "1.0"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)+$`)

// Options configures a Resolver.
type Options struct {
	// DefaultLanguageLevel applies when no compatibility level is configured.
	DefaultLanguageLevel domain.LanguageLevel
	// Requirements maps a dependency name to a version constraint it must satisfy, e.g. ">= 2.1.4".
	Requirements map[string]string
}

// DefaultOptions returns the options used by the droid CLI.
func DefaultOptions() Options {
	return Options{
		DefaultLanguageLevel: domain.LanguageLevel11,
		Requirements: map[string]string{
			"desugar_jdk_libs": ">= 2.1.4",
		},
	}
}

// Resolver validates raw build descriptions. It holds no mutable state.
type Resolver struct {
	defaultLevel domain.LanguageLevel
	requirements map[string]*semver.Constraints
}

// New creates a Resolver. It fails when a requirement is not a valid constraint
// or the default language level is not recognized.
func New(opts Options) (*Resolver, error) {
	if !opts.DefaultLanguageLevel.Valid() {
		return nil, zerr.With(domain.ErrUnknownLanguageLevel, "level", int(opts.DefaultLanguageLevel))
	}

	requirements := make(map[string]*semver.Constraints, len(opts.Requirements))
	for name, raw := range opts.Requirements {
		c, err := semver.NewConstraint(raw)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidRequirement.Error()), "dependency", name)
		}
		requirements[name] = c
	}

	return &Resolver{defaultLevel: opts.DefaultLanguageLevel, requirements: requirements}, nil
}

// Resolve applies defaults to raw and checks every invariant of a BuildDescriptor.
// Checks run in a fixed order and the first failure is returned as a *domain.ConfigurationError.
func (r *Resolver) Resolve(raw domain.RawConfig, defaults domain.PlatformDefaults) (domain.BuildDescriptor, error) {
	var f domain.DescriptorFields
	var err error

	if f.ApplicationID, f.Namespace, err = resolveIdentifiers(raw); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.Plugins, err = resolvePlugins(raw.Plugins); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.SDK, err = resolveSDK(raw.SDK, defaults); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.NDKVersion, err = resolveNDK(raw.NDKVersion, defaults.NDKVersion); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.LanguageLevel, err = r.resolveLanguageLevel(raw); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.Version, err = resolveVersion(raw, defaults); err != nil {
		return domain.BuildDescriptor{}, err
	}
	if f.BuildType, f.Signing, err = resolveSigning(raw); err != nil {
		return domain.BuildDescriptor{}, err
	}

	if f.Dependencies, err = resolveDependencies(raw.Dependencies); err != nil {
		return domain.BuildDescriptor{}, err
	}

	f.Desugaring = raw.Compile.CoreLibraryDesugaring
	if f.Desugaring && !hasDesugaringLibrary(f.Dependencies) {
		return domain.BuildDescriptor{}, domain.NewConfigurationError(
			"compileOptions.coreLibraryDesugaring", domain.ErrMissingDesugaringLibrary)
	}

	if err := r.checkRequirements(f.Dependencies); err != nil {
		return domain.BuildDescriptor{}, err
	}

	f.SourceRoot = resolvePath(raw.Dir, raw.SourceRoot)

	return domain.NewBuildDescriptor(f), nil
}

func resolveIdentifiers(raw domain.RawConfig) (applicationID, namespace string, err error) {
	applicationID = strings.TrimSpace(raw.ApplicationID)
	if applicationID == "" {
		return "", "", domain.NewConfigurationError("applicationId", domain.ErrMissingApplicationID)
	}
	if !identifierPattern.MatchString(applicationID) {
		return "", "", domain.NewConfigurationError("applicationId",
			zerr.With(domain.ErrInvalidApplicationID, "value", applicationID))
	}

	namespace = strings.TrimSpace(raw.Namespace)
	if namespace == "" {
		return applicationID, applicationID, nil
	}
	if !identifierPattern.MatchString(namespace) {
		return "", "", domain.NewConfigurationError("namespace",
			zerr.With(domain.ErrInvalidApplicationID, "value", namespace))
	}
	return applicationID, namespace, nil
}

func resolvePlugins(plugins []string) ([]string, error) {
	seen := make(map[string]int, len(plugins))
	lastPlatform := -1
	flutterAt := -1

	for i, id := range plugins {
		key := fmt.Sprintf("plugins[%d]", i)
		if strings.TrimSpace(id) == "" {
			return nil, domain.NewConfigurationError(key, domain.ErrEmptyPlugin)
		}
		if first, ok := seen[id]; ok {
			return nil, domain.NewConfigurationError(key,
				zerr.With(zerr.With(domain.ErrDuplicatePlugin, "plugin", id), "first", first))
		}
		seen[id] = i

		switch {
		case id == domain.PluginFlutter:
			flutterAt = i
		case domain.IsPlatformPlugin(id):
			lastPlatform = i
		}
	}

	if flutterAt >= 0 && lastPlatform > flutterAt {
		return nil, domain.NewConfigurationError(fmt.Sprintf("plugins[%d]", flutterAt),
			zerr.With(domain.ErrPluginOrder, "plugin", plugins[lastPlatform]))
	}
	return plugins, nil
}

func resolveSDK(raw domain.RawSDK, defaults domain.PlatformDefaults) (domain.SDKLevels, error) {
	compile, err := sdkLevel("sdk.compile", raw.Compile, defaults.CompileSDK)
	if err != nil {
		return domain.SDKLevels{}, err
	}
	minLevel, err := sdkLevel("sdk.min", raw.Min, defaults.MinSDK)
	if err != nil {
		return domain.SDKLevels{}, err
	}
	target, err := sdkLevel("sdk.target", raw.Target, defaults.TargetSDK)
	if err != nil {
		return domain.SDKLevels{}, err
	}

	if minLevel > target {
		return domain.SDKLevels{}, domain.NewConfigurationError("sdk.min",
			zerr.With(zerr.With(domain.ErrSDKOrdering, "min", minLevel), "target", target))
	}
	if target > compile {
		return domain.SDKLevels{}, domain.NewConfigurationError("sdk.target",
			zerr.With(zerr.With(domain.ErrSDKOrdering, "target", target), "compile", compile))
	}

	return domain.SDKLevels{Compile: compile, Min: minLevel, Target: target}, nil
}

func sdkLevel(key string, configured *int, fallback int) (int, error) {
	if configured == nil {
		if fallback == 0 {
			return 0, domain.NewConfigurationError(key, domain.ErrMissingSDKLevel)
		}
		if fallback < 0 {
			return 0, domain.NewConfigurationError(key, zerr.With(domain.ErrInvalidSDKLevel, "value", fallback))
		}
		return fallback, nil
	}
	if *configured <= 0 {
		return 0, domain.NewConfigurationError(key, zerr.With(domain.ErrInvalidSDKLevel, "value", *configured))
	}
	return *configured, nil
}

func resolveNDK(configured, fallback string) (string, error) {
	ndk := strings.TrimSpace(configured)
	if ndk == "" {
		ndk = strings.TrimSpace(fallback)
	}
	if ndk == "" {
		return "", nil
	}
	if _, err := semver.NewVersion(ndk); err != nil {
		return "", domain.NewConfigurationError("ndkVersion",
			zerr.With(zerr.Wrap(err, domain.ErrInvalidNDKVersion.Error()), "value", ndk))
	}
	return ndk, nil
}

func (r *Resolver) resolveLanguageLevel(raw domain.RawConfig) (domain.LanguageLevel, error) {
	settings := []struct {
		key   string
		value string
	}{
		{"compileOptions.sourceCompatibility", raw.Compile.SourceCompatibility},
		{"compileOptions.targetCompatibility", raw.Compile.TargetCompatibility},
		{"kotlinOptions.jvmTarget", raw.KotlinJVMTarget},
	}

	level := domain.LanguageLevelUnknown
	for _, s := range settings {
		if strings.TrimSpace(s.value) == "" {
			continue
		}
		parsed, ok := domain.ParseLanguageLevel(s.value)
		if !ok {
			return domain.LanguageLevelUnknown, domain.NewConfigurationError(s.key,
				zerr.With(domain.ErrUnknownLanguageLevel, "value", s.value))
		}
		if level == domain.LanguageLevelUnknown {
			level = parsed
			continue
		}
		if parsed != level {
			return domain.LanguageLevelUnknown, domain.NewConfigurationError(s.key,
				zerr.With(zerr.With(domain.ErrLanguageLevelMismatch, "expected", level.String()), "actual", parsed.String()))
		}
	}

	if level == domain.LanguageLevelUnknown {
		return r.defaultLevel, nil
	}
	return level, nil
}

func resolveVersion(raw domain.RawConfig, defaults domain.PlatformDefaults) (domain.AppVersion, error) {
	code := defaultVersionCode
	switch {
	case raw.VersionCode != nil:
		code = *raw.VersionCode
	case defaults.VersionCode != 0:
		code = defaults.VersionCode
	}
	if code < minVersionCode || code > maxVersionCode {
		return domain.AppVersion{}, domain.NewConfigurationError("version.code",
			zerr.With(domain.ErrInvalidVersionCode, "value", code))
	}

	name := defaultVersionName
	switch {
	case raw.VersionName != "":
		name = strings.TrimSpace(raw.VersionName)
		if name == "" {
			return domain.AppVersion{}, domain.NewConfigurationError("version.name", domain.ErrEmptyVersionName)
		}
	case defaults.VersionName != "":
		name = defaults.VersionName
	}

	return domain.AppVersion{Code: code, Name: name}, nil
}

func resolveSigning(raw domain.RawConfig) (domain.BuildType, domain.Signing, error) {
	buildType := domain.BuildType(strings.TrimSpace(raw.BuildType))
	if buildType == "" {
		buildType = domain.BuildTypeDebug
	}
	if !buildType.Valid() {
		return "", domain.Signing{}, domain.NewConfigurationError("buildType",
			zerr.With(domain.ErrUnknownBuildType, "value", string(buildType)))
	}

	debug := domain.Signing{Strategy: domain.SigningDebug, Config: domain.DebugSigningConfigName}
	settings := raw.BuildTypes[buildType.String()]
	key := "buildTypes." + buildType.String() + ".signingConfig"
	name := strings.TrimSpace(settings.SigningConfig)

	switch {
	case name == "" && buildType != domain.BuildTypeRelease:
		return buildType, debug, nil
	case name == "":
		return "", domain.Signing{}, domain.NewConfigurationError(key, domain.ErrMissingReleaseSigning)
	case name == domain.DebugSigningConfigName && buildType != domain.BuildTypeRelease:
		return buildType, debug, nil
	case name == domain.DebugSigningConfigName:
		if !settings.AcknowledgeDebugSigning {
			return "", domain.Signing{}, domain.NewConfigurationError(key, domain.ErrUnacknowledgedDebugSigning)
		}
		debug.Acknowledged = true
		return buildType, debug, nil
	}

	cfg, ok := raw.SigningConfigs[name]
	if !ok {
		return "", domain.Signing{}, domain.NewConfigurationError(key,
			zerr.With(domain.ErrUnknownSigningConfig, "name", name))
	}

	prefix := "signingConfigs." + name
	if strings.TrimSpace(cfg.StoreFile) == "" {
		return "", domain.Signing{}, domain.NewConfigurationError(prefix+".storeFile",
			zerr.With(domain.ErrIncompleteSigningConfig, "missing", "storeFile"))
	}
	if strings.TrimSpace(cfg.KeyAlias) == "" {
		return "", domain.Signing{}, domain.NewConfigurationError(prefix+".keyAlias",
			zerr.With(domain.ErrIncompleteSigningConfig, "missing", "keyAlias"))
	}

	return buildType, domain.Signing{
		Strategy:         domain.SigningRelease,
		Config:           name,
		StoreFile:        resolvePath(raw.Dir, strings.TrimSpace(cfg.StoreFile)),
		KeyAlias:         strings.TrimSpace(cfg.KeyAlias),
		StorePasswordEnv: cfg.StorePasswordEnv,
		KeyPasswordEnv:   cfg.KeyPasswordEnv,
	}, nil
}

// resolveDependencies checks names and versions. Versions are free-form Gradle
// version strings; they are only parsed when a requirement applies.
func resolveDependencies(raw []domain.RawDependency) ([]domain.Dependency, error) {
	deps := make([]domain.Dependency, 0, len(raw))
	seen := make(map[string]int, len(raw))

	for i, rd := range raw {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		dep, err := splitDependency(prefix, rd)
		if err != nil {
			return nil, err
		}

		if dep.Name == "" {
			return nil, domain.NewConfigurationError(prefix+".name", domain.ErrMissingDependencyName)
		}
		if first, ok := seen[dep.Name]; ok {
			return nil, domain.NewConfigurationError(prefix+".name",
				zerr.With(zerr.With(domain.ErrDuplicateDependency, "name", dep.Name), "first", first))
		}
		seen[dep.Name] = i

		if dep.Version == "" {
			return nil, domain.NewConfigurationError(prefix+".version", domain.ErrMissingDependencyVersion)
		}

		deps = append(deps, dep)
	}

	return deps, nil
}

func splitDependency(prefix string, rd domain.RawDependency) (domain.Dependency, error) {
	dep := domain.Dependency{
		Configuration: strings.TrimSpace(rd.Configuration),
		Group:         strings.TrimSpace(rd.Group),
		Name:          strings.TrimSpace(rd.Name),
		Version:       strings.TrimSpace(rd.Version),
	}
	if dep.Configuration == "" {
		dep.Configuration = domain.DefaultDependencyConfiguration
	}

	coordinate := strings.TrimSpace(rd.Coordinate)
	if coordinate == "" {
		return dep, nil
	}

	parts := strings.Split(coordinate, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return domain.Dependency{}, domain.NewConfigurationError(prefix+".coordinate",
			zerr.With(domain.ErrInvalidCoordinate, "value", coordinate))
	}
	dep.Group, dep.Name, dep.Version = parts[0], parts[1], parts[2]
	return dep, nil
}

func hasDesugaringLibrary(deps []domain.Dependency) bool {
	for _, dep := range deps {
		if dep.Configuration == domain.DesugaringConfiguration {
			return true
		}
	}
	return false
}

func (r *Resolver) checkRequirements(deps []domain.Dependency) error {
	for i, dep := range deps {
		c, ok := r.requirements[dep.Name]
		if !ok {
			continue
		}
		key := fmt.Sprintf("dependencies[%d].version", i)
		v, err := semver.NewVersion(dep.Version)
		if err != nil {
			return domain.NewConfigurationError(key,
				zerr.With(zerr.Wrap(err, domain.ErrInvalidDependencyVersion.Error()), "value", dep.Version))
		}
		if !c.Check(v) {
			return domain.NewConfigurationError(key,
				zerr.With(zerr.With(domain.ErrDependencyTooOld, "required", c.String()), "actual", dep.Version))
		}
	}
	return nil
}

func resolvePath(dir, path string) string {
	switch {
	case path == "":
		return dir
	case filepath.IsAbs(path) || dir == "":
		return filepath.Clean(path)
	default:
		return filepath.Join(dir, path)
	}
}
