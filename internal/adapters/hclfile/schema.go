package hclfile

import (
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildFile is the top-level structure of droid.hcl.
type buildFile struct {
	Namespace       string   `hcl:"namespace,optional"`
	ApplicationID   string   `hcl:"application_id,optional"`
	Plugins         []string `hcl:"plugins,optional"`
	NDKVersion      string   `hcl:"ndk_version,optional"`
	ActiveBuildType string   `hcl:"active_build_type,optional"`

	SDK            *sdkBlock            `hcl:"sdk,block"`
	CompileOptions *compileOptionsBlock `hcl:"compile_options,block"`
	KotlinOptions  *kotlinOptionsBlock  `hcl:"kotlin_options,block"`
	Version        *versionBlock        `hcl:"version,block"`
	BuildTypes     []buildTypeBlock     `hcl:"build_type,block"`
	SigningConfigs []signingConfigBlock `hcl:"signing_config,block"`
	Dependencies   []dependencyBlock    `hcl:"dependency,block"`
	Flutter        *flutterBlock        `hcl:"flutter,block"`
}

type sdkBlock struct {
	Compile *int `hcl:"compile,optional"`
	Min     *int `hcl:"min,optional"`
	Target  *int `hcl:"target,optional"`
}

type compileOptionsBlock struct {
	SourceCompatibility   string `hcl:"source_compatibility,optional"`
	TargetCompatibility   string `hcl:"target_compatibility,optional"`
	CoreLibraryDesugaring bool   `hcl:"core_library_desugaring,optional"`
}

type kotlinOptionsBlock struct {
	JVMTarget string `hcl:"jvm_target,optional"`
}

type versionBlock struct {
	Code *int   `hcl:"code,optional"`
	Name string `hcl:"name,optional"`
}

type buildTypeBlock struct {
	Name                    string `hcl:"name,label"`
	SigningConfig           string `hcl:"signing_config,optional"`
	AcknowledgeDebugSigning bool   `hcl:"acknowledge_debug_signing,optional"`
}

type signingConfigBlock struct {
	Name             string `hcl:"name,label"`
	StoreFile        string `hcl:"store_file,optional"`
	KeyAlias         string `hcl:"key_alias,optional"`
	StorePasswordEnv string `hcl:"store_password_env,optional"`
	KeyPasswordEnv   string `hcl:"key_password_env,optional"`
}

type dependencyBlock struct {
	Configuration string `hcl:"configuration,label"`
	Coordinate    string `hcl:"coordinate,optional"`
	Group         string `hcl:"group,optional"`
	Name          string `hcl:"name,optional"`
	Version       string `hcl:"version,optional"`
}

type flutterBlock struct {
	Source string `hcl:"source,optional"`
}

// toRawConfig converts the decoded file. A label repeated within
// build_type or signing_config blocks is an error.
func (f *buildFile) toRawConfig(dir string) (*domain.RawConfig, error) {
	raw := &domain.RawConfig{
		Dir:           dir,
		Namespace:     f.Namespace,
		ApplicationID: f.ApplicationID,
		Plugins:       f.Plugins,
		NDKVersion:    f.NDKVersion,
		BuildType:     f.ActiveBuildType,
	}

	if f.SDK != nil {
		raw.SDK = domain.RawSDK{Compile: f.SDK.Compile, Min: f.SDK.Min, Target: f.SDK.Target}
	}
	if f.CompileOptions != nil {
		raw.Compile = domain.RawCompileOptions{
			SourceCompatibility:   f.CompileOptions.SourceCompatibility,
			TargetCompatibility:   f.CompileOptions.TargetCompatibility,
			CoreLibraryDesugaring: f.CompileOptions.CoreLibraryDesugaring,
		}
	}
	if f.KotlinOptions != nil {
		raw.KotlinJVMTarget = f.KotlinOptions.JVMTarget
	}
	if f.Version != nil {
		raw.VersionCode = f.Version.Code
		raw.VersionName = f.Version.Name
	}
	if f.Flutter != nil {
		raw.SourceRoot = f.Flutter.Source
	}

	if len(f.BuildTypes) > 0 {
		raw.BuildTypes = make(map[string]domain.RawBuildType, len(f.BuildTypes))
		for _, bt := range f.BuildTypes {
			if _, ok := raw.BuildTypes[bt.Name]; ok {
				return nil, duplicateBlock("build_type", bt.Name)
			}
			raw.BuildTypes[bt.Name] = domain.RawBuildType{
				SigningConfig:           bt.SigningConfig,
				AcknowledgeDebugSigning: bt.AcknowledgeDebugSigning,
			}
		}
	}

	if len(f.SigningConfigs) > 0 {
		raw.SigningConfigs = make(map[string]domain.RawSigningConfig, len(f.SigningConfigs))
		for _, sc := range f.SigningConfigs {
			if _, ok := raw.SigningConfigs[sc.Name]; ok {
				return nil, duplicateBlock("signing_config", sc.Name)
			}
			raw.SigningConfigs[sc.Name] = domain.RawSigningConfig{
				StoreFile:        sc.StoreFile,
				KeyAlias:         sc.KeyAlias,
				StorePasswordEnv: sc.StorePasswordEnv,
				KeyPasswordEnv:   sc.KeyPasswordEnv,
			}
		}
	}

	for _, dep := range f.Dependencies {
		raw.Dependencies = append(raw.Dependencies, domain.RawDependency{
			Configuration: dep.Configuration,
			Coordinate:    dep.Coordinate,
			Group:         dep.Group,
			Name:          dep.Name,
			Version:       dep.Version,
		})
	}

	return raw, nil
}

func duplicateBlock(block, name string) error {
	return zerr.With(zerr.With(domain.ErrDuplicateBlock, "block", block), "name", name)
}
