package ports

import "go.trai.ch/cargojni/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a target below dir.
	// Returns nil, nil if not found.
	Get(dir, target string) (*domain.BuildRecord, error)

	// Put stores the record below dir.
	Put(dir string, record domain.BuildRecord) error
}
