package domain

// BuildType is the variant a descriptor is resolved for.
type BuildType string

const (
	// BuildTypeDebug is the development build, always signed with the debug key.
	BuildTypeDebug BuildType = "debug"
	// BuildTypeProfile is the profiling build, signed with the debug key.
	BuildTypeProfile BuildType = "profile"
	// BuildTypeRelease is the distributable build.
	BuildTypeRelease BuildType = "release"
)

// Valid reports whether t is a recognized build type.
func (t BuildType) Valid() bool {
	switch t {
	case BuildTypeDebug, BuildTypeProfile, BuildTypeRelease:
		return true
	default:
		return false
	}
}

// String returns the string representation of the BuildType.
func (t BuildType) String() string {
	return string(t)
}

// SigningStrategy is the policy that decides which identity signs the artifact.
type SigningStrategy string

const (
	// SigningDebug signs with the shared debug keystore.
	SigningDebug SigningStrategy = "debug"
	// SigningRelease signs with a declared release keystore.
	SigningRelease SigningStrategy = "release-signed"
)

// String returns the string representation of the SigningStrategy.
func (s SigningStrategy) String() string {
	return string(s)
}

// DebugSigningConfigName is the name of the implicit debug signing config.
const DebugSigningConfigName = "debug"

// Signing is the resolved signing policy of a descriptor.
type Signing struct {
	Strategy SigningStrategy
	// Config is the name of the signing config, "debug" for debug signing.
	Config string
	// StoreFile and KeyAlias are set for release-signed descriptors.
	StoreFile string
	KeyAlias  string
	// StorePasswordEnv and KeyPasswordEnv name the environment variables that hold the secrets.
	StorePasswordEnv string
	KeyPasswordEnv   string
	// Acknowledged is true when a release build was explicitly allowed to use debug signing.
	Acknowledged bool
}
