package config

import (
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// BuildFile represents the structure of the droid.yaml build file.
type BuildFile struct {
	Namespace      string                      `yaml:"namespace"`
	ApplicationID  string                      `yaml:"applicationId"`
	Plugins        []string                    `yaml:"plugins"`
	SDK            SDKDTO                      `yaml:"sdk"`
	NDKVersion     string                      `yaml:"ndkVersion"`
	CompileOptions CompileOptionsDTO           `yaml:"compileOptions"`
	KotlinOptions  KotlinOptionsDTO            `yaml:"kotlinOptions"`
	Version        VersionDTO                  `yaml:"version"`
	BuildType      string                      `yaml:"buildType"`
	BuildTypes     map[string]BuildTypeDTO     `yaml:"buildTypes"`
	SigningConfigs map[string]SigningConfigDTO `yaml:"signingConfigs"`
	Dependencies   []DependencyDTO             `yaml:"dependencies"`
	Flutter        FlutterDTO                  `yaml:"flutter"`
}

// SDKDTO holds the Android API levels.
type SDKDTO struct {
	Compile *int `yaml:"compile"`
	Min     *int `yaml:"min"`
	Target  *int `yaml:"target"`
}

// CompileOptionsDTO mirrors the Gradle compileOptions block.
type CompileOptionsDTO struct {
	SourceCompatibility   string `yaml:"sourceCompatibility"`
	TargetCompatibility   string `yaml:"targetCompatibility"`
	CoreLibraryDesugaring bool   `yaml:"coreLibraryDesugaring"`
}

// KotlinOptionsDTO mirrors the Gradle kotlinOptions block.
type KotlinOptionsDTO struct {
	JVMTarget string `yaml:"jvmTarget"`
}

// VersionDTO holds the version code and name.
type VersionDTO struct {
	Code *int   `yaml:"code"`
	Name string `yaml:"name"`
}

// BuildTypeDTO represents one entry of buildTypes.
type BuildTypeDTO struct {
	SigningConfig           string `yaml:"signingConfig"`
	AcknowledgeDebugSigning bool   `yaml:"acknowledgeDebugSigning"`
}

// SigningConfigDTO represents one entry of signingConfigs.
// Passwords are never stored in the build file, only the names of the variables holding them.
type SigningConfigDTO struct {
	StoreFile        string `yaml:"storeFile"`
	KeyAlias         string `yaml:"keyAlias"`
	StorePasswordEnv string `yaml:"storePasswordEnv"`
	KeyPasswordEnv   string `yaml:"keyPasswordEnv"`
}

// DependencyDTO is a dependency, written either as a "group:name:version" string or as a mapping.
type DependencyDTO struct {
	Configuration string `yaml:"configuration"`
	Coordinate    string `yaml:"coordinate"`
	Group         string `yaml:"group"`
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
}

// dependencyFields are the keys allowed in the mapping form of a dependency.
var dependencyFields = map[string]bool{
	"configuration": true,
	"coordinate":    true,
	"group":         true,
	"name":          true,
	"version":       true,
}

// UnmarshalYAML accepts the short string form.
// Node.Decode does not inherit KnownFields, so unknown keys are rejected here.
func (d *DependencyDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Coordinate = value.Value
		return nil
	}
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := value.Content[i]
			if !dependencyFields[key.Value] {
				return zerr.With(zerr.With(domain.ErrUnknownConfigField, "field", key.Value), "line", key.Line)
			}
		}
	}
	type plain DependencyDTO
	return value.Decode((*plain)(d))
}

// FlutterDTO mirrors the flutter block.
type FlutterDTO struct {
	Source string `yaml:"source"`
}
