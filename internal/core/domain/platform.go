package domain

// PlatformDefaults are values supplied by the platform tooling when the build file omits them.
// A zero value means the platform does not provide that default.
type PlatformDefaults struct {
	CompileSDK  int
	MinSDK      int
	TargetSDK   int
	VersionCode int
	VersionName string
	NDKVersion  string
}

// Merge returns d with every non-zero field of override applied on top.
func (d PlatformDefaults) Merge(override PlatformDefaults) PlatformDefaults {
	if override.CompileSDK != 0 {
		d.CompileSDK = override.CompileSDK
	}
	if override.MinSDK != 0 {
		d.MinSDK = override.MinSDK
	}
	if override.TargetSDK != 0 {
		d.TargetSDK = override.TargetSDK
	}
	if override.VersionCode != 0 {
		d.VersionCode = override.VersionCode
	}
	if override.VersionName != "" {
		d.VersionName = override.VersionName
	}
	if override.NDKVersion != "" {
		d.NDKVersion = override.NDKVersion
	}
	return d
}
