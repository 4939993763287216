package domain

import "slices"

// SDKLevels are the resolved Android API levels.
type SDKLevels struct {
	Compile int
	Min     int
	Target  int
}

// AppVersion is the resolved version code and name.
type AppVersion struct {
	Code int
	Name string
}

// DescriptorFields carries the values a BuildDescriptor is built from.
type DescriptorFields struct {
	Namespace     string
	ApplicationID string
	Plugins       []string
	SDK           SDKLevels
	NDKVersion    string
	LanguageLevel LanguageLevel
	Desugaring    bool
	Version       AppVersion
	BuildType     BuildType
	Signing       Signing
	Dependencies  []Dependency
	SourceRoot    string
}

// BuildDescriptor is the resolved, validated build configuration handed to the build executor.
// It cannot be modified after construction; slice accessors return copies.
type BuildDescriptor struct {
	f DescriptorFields
}

// NewBuildDescriptor creates a BuildDescriptor from fields. Slices are copied.
func NewBuildDescriptor(fields DescriptorFields) BuildDescriptor {
	fields.Plugins = slices.Clone(fields.Plugins)
	fields.Dependencies = slices.Clone(fields.Dependencies)
	return BuildDescriptor{f: fields}
}

// Namespace returns the code namespace of the application.
func (d BuildDescriptor) Namespace() string { return d.f.Namespace }

// ApplicationID returns the reverse-domain application identifier.
func (d BuildDescriptor) ApplicationID() string { return d.f.ApplicationID }

// Plugins returns the applied plugin ids in application order.
func (d BuildDescriptor) Plugins() []string { return slices.Clone(d.f.Plugins) }

// SDK returns the resolved SDK levels.
func (d BuildDescriptor) SDK() SDKLevels { return d.f.SDK }

// NDKVersion returns the NDK version, empty when none is used.
func (d BuildDescriptor) NDKVersion() string { return d.f.NDKVersion }

// LanguageLevel returns the Java compatibility level.
func (d BuildDescriptor) LanguageLevel() LanguageLevel { return d.f.LanguageLevel }

// Desugaring reports whether core library desugaring is enabled.
func (d BuildDescriptor) Desugaring() bool { return d.f.Desugaring }

// Version returns the version code and name.
func (d BuildDescriptor) Version() AppVersion { return d.f.Version }

// BuildType returns the build type the descriptor was resolved for.
func (d BuildDescriptor) BuildType() BuildType { return d.f.BuildType }

// Signing returns the signing policy.
func (d BuildDescriptor) Signing() Signing { return d.f.Signing }

// Dependencies returns the declared dependencies in declaration order.
func (d BuildDescriptor) Dependencies() []Dependency { return slices.Clone(d.f.Dependencies) }

// SourceRoot returns the Flutter source root.
func (d BuildDescriptor) SourceRoot() string { return d.f.SourceRoot }

// Equal reports whether d and other hold the same values.
func (d BuildDescriptor) Equal(other BuildDescriptor) bool {
	a, b := d.f, other.f
	return a.Namespace == b.Namespace &&
		a.ApplicationID == b.ApplicationID &&
		slices.Equal(a.Plugins, b.Plugins) &&
		a.SDK == b.SDK &&
		a.NDKVersion == b.NDKVersion &&
		a.LanguageLevel == b.LanguageLevel &&
		a.Desugaring == b.Desugaring &&
		a.Version == b.Version &&
		a.BuildType == b.BuildType &&
		a.Signing == b.Signing &&
		slices.Equal(a.Dependencies, b.Dependencies) &&
		a.SourceRoot == b.SourceRoot
}
