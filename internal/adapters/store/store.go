// Package store persists resolved descriptors so that later runs can report changes.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/droid/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.DescriptorStore with one JSON file per build type.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the last record stored under root for buildType, or nil if there is none.
func (s *Store) Get(root, buildType string) (*domain.DescriptorRecord, error) {
	filename, err := s.getFilename(root, buildType)
	if err != nil {
		return nil, err
	}

	//nolint:gosec // Path is built from the project root and a validated build type
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "file", filename)
	}

	var record domain.DescriptorRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "file", filename)
	}

	return &record, nil
}

// Put stores record under root, replacing the previous record of the same build type.
func (s *Store) Put(root string, record domain.DescriptorRecord) error {
	filename, err := s.getFilename(root, record.BuildType)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is built from the project root and a validated build type
	if err := os.WriteFile(filename, append(data, '\n'), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "file", filename)
	}

	return nil
}

func (s *Store) getFilename(root, buildType string) (string, error) {
	if !domain.BuildType(buildType).Valid() {
		return "", zerr.With(domain.ErrUnknownBuildType, "build_type", buildType)
	}
	return filepath.Join(root, domain.DefaultDescriptorsPath(), buildType+".json"), nil
}
