package fingerprint_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/droid/internal/adapters/fingerprint"
	"go.trai.ch/droid/internal/core/domain"
)

func descriptorFields() domain.DescriptorFields {
	return domain.DescriptorFields{
		Namespace:     "com.example.app",
		ApplicationID: "com.example.app",
		Plugins:       []string{domain.PluginAndroidApplication, domain.PluginKotlinAndroid, domain.PluginFlutter},
		SDK:           domain.SDKLevels{Compile: 34, Min: 21, Target: 34},
		LanguageLevel: domain.LanguageLevel11,
		Desugaring:    true,
		Version:       domain.AppVersion{Code: 1, Name: "1.0"},
		BuildType:     domain.BuildTypeDebug,
		Signing:       domain.Signing{Strategy: domain.SigningDebug, Config: "debug"},
		Dependencies: []domain.Dependency{
			{Configuration: domain.DesugaringConfiguration, Group: "com.android.tools", Name: "desugar_jdk_libs", Version: "2.1.4"},
		},
	}
}

func TestHasher_Fingerprint(t *testing.T) {
	h := fingerprint.NewHasher()

	a := h.Fingerprint(domain.NewBuildDescriptor(descriptorFields()))
	b := h.Fingerprint(domain.NewBuildDescriptor(descriptorFields()))

	assert.Equal(t, a, b)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), a)
}

func TestHasher_Fingerprint_DetectsChanges(t *testing.T) {
	h := fingerprint.NewHasher()
	base := h.Fingerprint(domain.NewBuildDescriptor(descriptorFields()))

	mutations := map[string]func(*domain.DescriptorFields){
		"min sdk":        func(f *domain.DescriptorFields) { f.SDK.Min = 23 },
		"language level": func(f *domain.DescriptorFields) { f.LanguageLevel = domain.LanguageLevel17 },
		"signing":        func(f *domain.DescriptorFields) { f.Signing.Acknowledged = true },
		"plugin order": func(f *domain.DescriptorFields) {
			f.Plugins = []string{domain.PluginKotlinAndroid, domain.PluginAndroidApplication, domain.PluginFlutter}
		},
		"dependency version": func(f *domain.DescriptorFields) {
			f.Dependencies = []domain.Dependency{
				{Configuration: domain.DesugaringConfiguration, Group: "com.android.tools", Name: "desugar_jdk_libs", Version: "2.1.5"},
			}
		},
		"field boundary": func(f *domain.DescriptorFields) {
			f.Namespace = "com.example.appcom.example"
			f.ApplicationID = ".app"
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			fields := descriptorFields()
			mutate(&fields)
			assert.NotEqual(t, base, h.Fingerprint(domain.NewBuildDescriptor(fields)))
		})
	}
}
