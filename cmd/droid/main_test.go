package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droid/internal/app"
	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/droid/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func mockComponents(t *testing.T, loader *mocks.MockConfigLoader, logger *mocks.MockLogger) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	application := app.New(
		loader,
		mocks.NewMockPlatformDefaultsProvider(ctrl),
		mocks.NewMockResolver(ctrl),
		mocks.NewMockFingerprinter(ctrl),
		mocks.NewMockDescriptorStore(ctrl),
		mocks.NewMockEmitter(ctrl),
		logger,
	)

	return func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    application,
			Logger: logger,
		}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetJSON(false)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer),
		mockComponents(t, mocks.NewMockConfigLoader(ctrl), mockLogger))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "droid version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetJSON(false)
	mockLogger.EXPECT().Error(gomock.Any())

	mockLoader.EXPECT().Load(gomock.Any(), "android/app").Return(nil, errors.New("load failed"))

	exitCode := run(context.Background(), []string{"validate", "android/app"}, new(bytes.Buffer), new(bytes.Buffer),
		mockComponents(t, mockLoader, mockLogger))

	assert.Equal(t, 1, exitCode)
}

// TestRun_Canceled verifies that a canceled context ends the run with an error.
func TestRun_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().SetJSON(false)
	mockLogger.EXPECT().Error(gomock.Any())

	mockLoader.EXPECT().Load(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (*domain.RawConfig, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return nil, errors.New("timeout in mock")
			}
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exitCode := run(ctx, []string{"validate"}, new(bytes.Buffer), new(bytes.Buffer),
		mockComponents(t, mockLoader, mockLogger))
	assert.Equal(t, 1, exitCode)
}

const projectYAML = `
applicationId: com.example.app
plugins:
  - com.android.application
  - kotlin-android
  - dev.flutter.flutter-gradle-plugin
sdk:
  compile: 34
  min: 21
  target: 34
ndkVersion: "27.0.12077973"
version:
  code: 3
  name: 1.0.2
flutter:
  source: ../..
`

func graftProvider(ctx context.Context) (*app.Components, error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, err
}

// TestRun_ResolveProject runs the fully wired application against a project on disk.
func TestRun_ResolveProject(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "android", "app")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "droid.yaml"), []byte(projectYAML), 0o600))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", dir}, stdout, new(bytes.Buffer), graftProvider)
	require.Equal(t, 0, exitCode)

	assert.Contains(t, stdout.String(), `"applicationId": "com.example.app"`)
	assert.Contains(t, stdout.String(), `"namespace": "com.example.app"`)
	assert.Contains(t, stdout.String(), `"buildType": "debug"`)
	assert.Contains(t, stdout.String(), `"sourceRoot": "`+root+`"`)
	assert.FileExists(t, filepath.Join(dir, ".droid", "descriptors", "debug.json"))
}

// TestRun_ResolveProject_ReleaseWithoutSigning verifies the exit code for an invalid release build.
func TestRun_ResolveProject_ReleaseWithoutSigning(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "droid.yaml"), []byte(projectYAML), 0o600))

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"resolve", dir, "-b", "release", "--no-store"},
		stdout, new(bytes.Buffer), graftProvider)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
	assert.NoDirExists(t, filepath.Join(dir, ".droid"))
}
