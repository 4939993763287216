package domain

import "path/filepath"

const (
	// DroidDirName is the name of the internal project directory.
	DroidDirName = ".droid"

	// DescriptorsDirName is the name of the stored descriptors directory.
	DescriptorsDirName = "descriptors"

	// YAMLFileName is the name of the YAML build file.
	YAMLFileName = "droid.yaml"

	// HCLFileName is the name of the HCL build file.
	HCLFileName = "droid.hcl"

	// LocalPropertiesFileName is the name of the file holding machine-local platform defaults.
	LocalPropertiesFileName = "local.properties"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// BuildFileNames lists the build file names in discovery priority order.
func BuildFileNames() []string {
	return []string{YAMLFileName, HCLFileName}
}

// DefaultDescriptorsPath returns the default path for stored descriptors.
// It joins .droid and descriptors.
func DefaultDescriptorsPath() string {
	return filepath.Join(DroidDirName, DescriptorsDirName)
}
