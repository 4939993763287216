package domain

// DefaultDependencyConfiguration is used when a dependency does not name its configuration.
const DefaultDependencyConfiguration = "implementation"

// DesugaringConfiguration is the configuration that carries the core library desugaring artifact.
const DesugaringConfiguration = "coreLibraryDesugaring"

// Dependency is an external library declared by the build.
// Name is the artifact name and is unique within a descriptor.
type Dependency struct {
	Configuration string
	Group         string
	Name          string
	Version       string
}

// Coordinate returns the group:name:version form, or name:version without a group.
func (d Dependency) Coordinate() string {
	if d.Group == "" {
		return d.Name + ":" + d.Version
	}
	return d.Group + ":" + d.Name + ":" + d.Version
}
