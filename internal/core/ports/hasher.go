package ports

import "go.trai.ch/cargojni/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint hashes a command line together with its environment.
	Fingerprint(cmd domain.Command) string
	// HashFile hashes a file's content.
	HashFile(path string) (string, error)
}
