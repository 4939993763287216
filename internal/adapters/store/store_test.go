package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/droid/internal/adapters/store"
	"go.trai.ch/droid/internal/core/domain"
)

func record(buildType, fingerprint string) domain.DescriptorRecord {
	return domain.DescriptorRecord{
		BuildType:   buildType,
		Fingerprint: fingerprint,
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Descriptor: domain.DescriptorDocument{
			ApplicationID: "com.example.app",
			SDK:           domain.SDKDocument{Compile: 34, Min: 21, Target: 34},
			BuildType:     buildType,
		},
	}
}

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	want := record("release", "0123456789abcdef")
	require.NoError(t, s.Put(root, want))

	got, err := s.Get(root, "release")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, want.Descriptor, got.Descriptor)

	assert.FileExists(t, filepath.Join(root, ".droid", "descriptors", "release.json"))
}

func TestStore_BuildTypesAreSeparate(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore()

	require.NoError(t, s.Put(root, record("debug", "aaaaaaaaaaaaaaaa")))
	require.NoError(t, s.Put(root, record("release", "bbbbbbbbbbbbbbbb")))
	require.NoError(t, s.Put(root, record("debug", "cccccccccccccccc")))

	debug, err := s.Get(root, "debug")
	require.NoError(t, err)
	assert.Equal(t, "cccccccccccccccc", debug.Fingerprint)

	release, err := s.Get(root, "release")
	require.NoError(t, err)
	assert.Equal(t, "bbbbbbbbbbbbbbbb", release.Fingerprint)
}

func TestStore_Get_Missing(t *testing.T) {
	got, err := store.NewStore().Get(t.TempDir(), "debug")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Get_Corrupted(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, domain.DefaultDescriptorsPath())
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.json"), []byte("{not json"), domain.FilePerm))

	_, err := store.NewStore().Get(root, "profile")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to unmarshal stored descriptor")
}

func TestStore_RejectsUnknownBuildType(t *testing.T) {
	s := store.NewStore()

	_, err := s.Get(t.TempDir(), "../../etc/passwd")
	require.Error(t, err)

	err = s.Put(t.TempDir(), record("staging", "0000000000000000"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown build type")
}

func TestStore_Put_CreateFailure(t *testing.T) {
	root := t.TempDir()
	// A file where the .droid directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.DroidDirName), nil, domain.FilePerm))

	err := store.NewStore().Put(root, record("debug", "0000000000000000"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to create descriptor store directory")
}
