package domain

import "time"

// DescriptorDocument is the serialized form of a BuildDescriptor consumed by the build executor.
type DescriptorDocument struct {
	Namespace     string               `json:"namespace" yaml:"namespace"`
	ApplicationID string               `json:"applicationId" yaml:"applicationId"`
	Plugins       []string             `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	SDK           SDKDocument          `json:"sdk" yaml:"sdk"`
	NDKVersion    string               `json:"ndkVersion,omitempty" yaml:"ndkVersion,omitempty"`
	LanguageLevel string               `json:"languageLevel" yaml:"languageLevel"`
	Desugaring    bool                 `json:"desugaring" yaml:"desugaring"`
	VersionCode   int                  `json:"versionCode" yaml:"versionCode"`
	VersionName   string               `json:"versionName" yaml:"versionName"`
	BuildType     string               `json:"buildType" yaml:"buildType"`
	Signing       SigningDocument      `json:"signing" yaml:"signing"`
	Dependencies  []DependencyDocument `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	SourceRoot    string               `json:"sourceRoot" yaml:"sourceRoot"`
}

// SDKDocument is the serialized form of SDKLevels.
type SDKDocument struct {
	Compile int `json:"compile" yaml:"compile"`
	Min     int `json:"min" yaml:"min"`
	Target  int `json:"target" yaml:"target"`
}

// SigningDocument is the serialized form of Signing.
type SigningDocument struct {
	Strategy         string `json:"strategy" yaml:"strategy"`
	Config           string `json:"config" yaml:"config"`
	StoreFile        string `json:"storeFile,omitempty" yaml:"storeFile,omitempty"`
	KeyAlias         string `json:"keyAlias,omitempty" yaml:"keyAlias,omitempty"`
	StorePasswordEnv string `json:"storePasswordEnv,omitempty" yaml:"storePasswordEnv,omitempty"`
	KeyPasswordEnv   string `json:"keyPasswordEnv,omitempty" yaml:"keyPasswordEnv,omitempty"`
	Acknowledged     bool   `json:"acknowledged,omitempty" yaml:"acknowledged,omitempty"`
}

// DependencyDocument is the serialized form of a Dependency.
type DependencyDocument struct {
	Configuration string `json:"configuration" yaml:"configuration"`
	Group         string `json:"group,omitempty" yaml:"group,omitempty"`
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
}

// DescriptorRecord is a stored resolution result.
type DescriptorRecord struct {
	BuildType   string             `json:"build_type,omitzero"`
	Fingerprint string             `json:"fingerprint,omitzero"`
	Timestamp   time.Time          `json:"timestamp,omitzero"`
	Descriptor  DescriptorDocument `json:"descriptor"`
}

// Document renders d as a DescriptorDocument.
func (d BuildDescriptor) Document() DescriptorDocument {
	sdk := d.SDK()
	signing := d.Signing()
	version := d.Version()

	doc := DescriptorDocument{
		Namespace:     d.Namespace(),
		ApplicationID: d.ApplicationID(),
		Plugins:       d.Plugins(),
		SDK:           SDKDocument{Compile: sdk.Compile, Min: sdk.Min, Target: sdk.Target},
		NDKVersion:    d.NDKVersion(),
		LanguageLevel: d.LanguageLevel().String(),
		Desugaring:    d.Desugaring(),
		VersionCode:   version.Code,
		VersionName:   version.Name,
		BuildType:     d.BuildType().String(),
		Signing: SigningDocument{
			Strategy:         signing.Strategy.String(),
			Config:           signing.Config,
			StoreFile:        signing.StoreFile,
			KeyAlias:         signing.KeyAlias,
			StorePasswordEnv: signing.StorePasswordEnv,
			KeyPasswordEnv:   signing.KeyPasswordEnv,
			Acknowledged:     signing.Acknowledged,
		},
		SourceRoot: d.SourceRoot(),
	}

	for _, dep := range d.f.Dependencies {
		doc.Dependencies = append(doc.Dependencies, DependencyDocument{
			Configuration: dep.Configuration,
			Group:         dep.Group,
			Name:          dep.Name,
			Version:       dep.Version,
		})
	}
	return doc
}

// Descriptor output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)
