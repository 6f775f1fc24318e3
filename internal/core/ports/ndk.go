package ports

import (
	"context"

	"go.trai.ch/cargojni/internal/core/domain"
)

// NdkLocator finds the Android NDK used for cross-compilation.
//
//go:generate mockgen -source=ndk.go -destination=mocks/mock_ndk.go -package=mocks
type NdkLocator interface {
	// Locate returns the NDK at configured, or searches the environment when configured is empty.
	Locate(configured string) (domain.Ndk, error)
}

// ToolchainGenerator installs NDK standalone toolchains.
type ToolchainGenerator interface {
	// Generate recreates the standalone toolchain for tc below cfg.ToolchainDirectory().
	Generate(ctx context.Context, cfg *domain.BuildConfig, ndk domain.Ndk, tc domain.Toolchain) error
}
