package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const projectDir = "/work/android/app"

type appMocks struct {
	loader        *mocks.MockConfigLoader
	platform      *mocks.MockPlatformDefaultsProvider
	resolver      *mocks.MockResolver
	fingerprinter *mocks.MockFingerprinter
	store         *mocks.MockDescriptorStore
	emitter       *mocks.MockEmitter
	logger        *mocks.MockLogger
}

func setup(t *testing.T) (*app.App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		loader:        mocks.NewMockConfigLoader(ctrl),
		platform:      mocks.NewMockPlatformDefaultsProvider(ctrl),
		resolver:      mocks.NewMockResolver(ctrl),
		fingerprinter: mocks.NewMockFingerprinter(ctrl),
		store:         mocks.NewMockDescriptorStore(ctrl),
		emitter:       mocks.NewMockEmitter(ctrl),
		logger:        mocks.NewMockLogger(ctrl),
	}

	a := app.New(m.loader, m.platform, m.resolver, m.fingerprinter, m.store, m.emitter, m.logger).
		WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) })
	return a, m
}

func rawConfig() *domain.RawConfig {
	return &domain.RawConfig{
		Dir:           projectDir,
		ApplicationID: "com.example.app",
	}
}

func descriptor(signing domain.Signing, buildType domain.BuildType) domain.BuildDescriptor {
	return domain.NewBuildDescriptor(domain.DescriptorFields{
		Namespace:     "com.example.app",
		ApplicationID: "com.example.app",
		SDK:           domain.SDKLevels{Compile: 34, Min: 21, Target: 34},
		LanguageLevel: domain.LanguageLevel11,
		Version:       domain.AppVersion{Code: 1, Name: "1.0"},
		BuildType:     buildType,
		Signing:       signing,
		SourceRoot:    "/work",
	})
}

func debugDescriptor() domain.BuildDescriptor {
	return descriptor(domain.Signing{Strategy: domain.SigningDebug, Config: "debug"}, domain.BuildTypeDebug)
}

func TestApp_Resolve(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	defaults := domain.PlatformDefaults{CompileSDK: 34}
	d := debugDescriptor()
	var out bytes.Buffer

	m.loader.EXPECT().Load(ctx, "android/app").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(defaults, nil)
	m.resolver.EXPECT().Resolve(*rawConfig(), defaults).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "debug").Return(nil, nil)
	m.logger.EXPECT().Info("resolved com.example.app (debug)")
	gomock.InOrder(
		m.emitter.EXPECT().Emit(&out, "json", d.Document()).Return(nil),
		m.store.EXPECT().Put(projectDir, domain.DescriptorRecord{
			BuildType:   "debug",
			Fingerprint: "abc",
			Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Descriptor:  d.Document(),
		}).Return(nil),
	)

	err := a.Resolve(ctx, app.ResolveOptions{
		ValidateOptions: app.ValidateOptions{Path: "android/app"},
		Output:          &out,
	})
	require.NoError(t, err)
}

func TestApp_Resolve_Unchanged(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "debug").Return(&domain.DescriptorRecord{Fingerprint: "abc"}, nil)
	m.logger.EXPECT().Info("com.example.app (debug) unchanged")
	m.emitter.EXPECT().Emit(gomock.Any(), "yaml", d.Document()).Return(nil)

	err := a.Resolve(ctx, app.ResolveOptions{Format: "yaml", NoStore: true, Output: &bytes.Buffer{}})
	require.NoError(t, err)
}

func TestApp_Resolve_Changed(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()
	previous := &domain.DescriptorRecord{
		Fingerprint: "old",
		Timestamp:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("new")
	m.store.EXPECT().Get(projectDir, "debug").Return(previous, nil)
	m.logger.EXPECT().Info("com.example.app (debug) changed since 2025-12-31T00:00:00Z")
	m.store.EXPECT().Put(projectDir, gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), "json", gomock.Any()).Return(nil)

	require.NoError(t, a.Resolve(ctx, app.ResolveOptions{Output: &bytes.Buffer{}}))
}

func TestApp_Resolve_StoredRecordUnreadable(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "debug").Return(nil, errors.New("corrupt"))
	m.logger.EXPECT().Warn("ignoring stored descriptor: corrupt")
	m.store.EXPECT().Put(projectDir, gomock.Any()).Return(nil)
	m.emitter.EXPECT().Emit(gomock.Any(), "json", gomock.Any()).Return(nil)

	require.NoError(t, a.Resolve(ctx, app.ResolveOptions{Output: &bytes.Buffer{}}))
}

func TestApp_Resolve_UnknownFormat(t *testing.T) {
	a, _ := setup(t)

	err := a.Resolve(context.Background(), app.ResolveOptions{Format: "toml"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown output format")
}

func TestApp_Resolve_LoadError(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()

	m.loader.EXPECT().Load(ctx, ".").Return(nil, errors.New("load error"))

	err := a.Resolve(ctx, app.ResolveOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorContains(t, err, "load error")
}

func TestApp_Resolve_PlatformError(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, errors.New("bad properties"))

	err := a.Resolve(ctx, app.ResolveOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read platform defaults")
}

func TestApp_Resolve_ConfigurationErrorStopsPipeline(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	cfgErr := domain.NewConfigurationError("sdk.min", domain.ErrSDKOrdering)

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.BuildDescriptor{}, cfgErr)

	err := a.Resolve(ctx, app.ResolveOptions{})
	require.Error(t, err)

	var target *domain.ConfigurationError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "sdk.min", target.Key)
}

func TestApp_Resolve_StoreError(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "debug").Return(nil, nil)
	m.logger.EXPECT().Info(gomock.Any())
	m.emitter.EXPECT().Emit(gomock.Any(), "json", d.Document()).Return(nil)
	m.store.EXPECT().Put(projectDir, gomock.Any()).Return(errors.New("disk full"))

	err := a.Resolve(ctx, app.ResolveOptions{Output: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to store descriptor")
}

func TestApp_Resolve_EmitErrorSkipsStore(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "debug").Return(nil, nil)
	m.logger.EXPECT().Info(gomock.Any())
	m.emitter.EXPECT().Emit(gomock.Any(), "json", d.Document()).Return(errors.New("broken pipe"))

	err := a.Resolve(ctx, app.ResolveOptions{Output: &bytes.Buffer{}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "broken pipe")
}

func TestApp_Resolve_Overrides(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := descriptor(domain.Signing{Strategy: domain.SigningDebug, Config: "debug", Acknowledged: true}, domain.BuildTypeRelease)

	expected := *rawConfig()
	expected.BuildType = "release"
	expected.BuildTypes = map[string]domain.RawBuildType{
		"release": {SigningConfig: "debug", AcknowledgeDebugSigning: true},
	}

	m.loader.EXPECT().Load(ctx, ".").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(expected, domain.PlatformDefaults{}).Return(d, nil)
	m.logger.EXPECT().Warn("release build of com.example.app is signed with the debug key")
	m.fingerprinter.EXPECT().Fingerprint(d).Return("abc")
	m.store.EXPECT().Get(projectDir, "release").Return(nil, nil)
	m.logger.EXPECT().Info("resolved com.example.app (release)")
	m.emitter.EXPECT().Emit(gomock.Any(), "json", d.Document()).Return(nil)

	err := a.Resolve(ctx, app.ResolveOptions{
		ValidateOptions: app.ValidateOptions{BuildType: "release", AcknowledgeDebugSigning: true},
		NoStore:         true,
		Output:          &bytes.Buffer{},
	})
	require.NoError(t, err)
}

func TestApp_Resolve_AcknowledgeKeepsNamedSigningConfig(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	raw := rawConfig()
	raw.BuildType = "release"
	raw.BuildTypes = map[string]domain.RawBuildType{"release": {SigningConfig: "upload"}}

	m.loader.EXPECT().Load(ctx, ".").Return(raw, nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
		func(got domain.RawConfig, _ domain.PlatformDefaults) (domain.BuildDescriptor, error) {
			assert.Equal(t, domain.RawBuildType{SigningConfig: "upload", AcknowledgeDebugSigning: true},
				got.BuildTypes["release"])
			return domain.BuildDescriptor{}, domain.NewConfigurationError("x", domain.ErrUnknownSigningConfig)
		})

	err := a.Validate(ctx, app.ValidateOptions{AcknowledgeDebugSigning: true})
	require.Error(t, err)
}

func TestApp_Validate(t *testing.T) {
	a, m := setup(t)
	ctx := context.Background()
	d := debugDescriptor()

	m.loader.EXPECT().Load(ctx, "droid.yaml").Return(rawConfig(), nil)
	m.platform.EXPECT().Defaults(ctx, projectDir).Return(domain.PlatformDefaults{}, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(d, nil)
	m.logger.EXPECT().Info("com.example.app (debug) is valid")

	require.NoError(t, a.Validate(ctx, app.ValidateOptions{Path: "droid.yaml"}))
}
