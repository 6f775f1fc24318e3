// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/cargojni/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion. The command's environment entries are
	// applied on top of the inherited process environment.
	//
	// It returns an error carrying the exit code if the process fails.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
