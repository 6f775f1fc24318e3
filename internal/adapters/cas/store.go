// Package cas stores build records, one JSON file per target.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BuildRecordStore using a file-per-target strategy.
type Store struct{}

// NewStore creates a new Store. The directory is passed on every call.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record of target below dir. It returns nil, nil if none exists.
func (s *Store) Get(dir, target string) (*domain.BuildRecord, error) {
	filename := Filename(dir, target)
	//nolint:gosec // Path is constructed from the build directory and a hashed name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(domain.Wrap(domain.ErrStoreReadFailed, err), "path", filename)
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(domain.Wrap(domain.ErrStoreUnmarshalFailed, err), "path", filename)
	}
	return &record, nil
}

// Put stores record below dir, replacing any previous record of the same target.
func (s *Store) Put(dir string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return domain.Wrap(domain.ErrStoreMarshalFailed, err)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(domain.Wrap(domain.ErrStoreCreateFailed, err), "path", dir)
	}

	filename := Filename(dir, record.Target)
	//nolint:gosec // Path is constructed from the build directory and a hashed name
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(domain.Wrap(domain.ErrStoreWriteFailed, err), "path", filename)
	}
	return nil
}

// Filename returns the record file of target below dir.
func Filename(dir, target string) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.json", xxhash.Sum64String(target)))
}
