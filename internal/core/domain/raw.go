package domain

// RawConfig is the declarative build description as read from a build file,
// before defaults are applied and invariants are checked.
// Optional integers are pointers so that "not configured" differs from zero.
type RawConfig struct {
	// Dir is the directory of the build file. Relative paths are resolved against it.
	Dir string

	Namespace     string
	ApplicationID string
	Plugins       []string

	SDK        RawSDK
	NDKVersion string

	Compile         RawCompileOptions
	KotlinJVMTarget string

	VersionCode *int
	VersionName string

	BuildType      string
	BuildTypes     map[string]RawBuildType
	SigningConfigs map[string]RawSigningConfig

	Dependencies []RawDependency

	// SourceRoot is the Flutter project source path.
	SourceRoot string
}

// RawSDK holds the configured SDK levels.
type RawSDK struct {
	Compile *int
	Min     *int
	Target  *int
}

// RawCompileOptions mirrors the compileOptions block.
type RawCompileOptions struct {
	SourceCompatibility   string
	TargetCompatibility   string
	CoreLibraryDesugaring bool
}

// RawBuildType mirrors one entry of the buildTypes block.
type RawBuildType struct {
	SigningConfig           string
	AcknowledgeDebugSigning bool
}

// RawSigningConfig mirrors one entry of the signingConfigs block.
type RawSigningConfig struct {
	StoreFile        string
	KeyAlias         string
	StorePasswordEnv string
	KeyPasswordEnv   string
}

// RawDependency is a dependency as declared, either as a coordinate or as separate fields.
type RawDependency struct {
	Configuration string
	Coordinate    string
	Group         string
	Name          string
	Version       string
}

// IntPtr returns a pointer to v. It keeps RawConfig literals short.
func IntPtr(v int) *int {
	return &v
}
