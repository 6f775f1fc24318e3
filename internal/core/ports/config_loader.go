package ports

import "go.trai.ch/cargojni/internal/core/domain"

// ConfigLoader defines the interface for loading the build description.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build description at path, applies overrides and validates it.
	Load(path string) (*domain.BuildConfig, error)
}

// OverrideSource loads the key/value overrides for a project.
type OverrideSource interface {
	// Load reads local.properties below root, if present, together with the environment.
	Load(root string) (domain.Overrides, error)
}
