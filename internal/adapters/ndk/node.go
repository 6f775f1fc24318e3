package ndk

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/logger"
	"go.trai.ch/cargojni/internal/adapters/shell"
	"go.trai.ch/cargojni/internal/core/ports"
)

const (
	// LocatorNodeID is the unique identifier for the NDK locator Graft node.
	LocatorNodeID graft.ID = "adapter.ndk_locator"
	// GeneratorNodeID is the unique identifier for the toolchain generator Graft node.
	GeneratorNodeID graft.ID = "adapter.toolchain_generator"
)

func init() {
	graft.Register(graft.Node[ports.NdkLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.NdkLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})

	graft.Register(graft.Node[ports.ToolchainGenerator]{
		ID:        GeneratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolchainGenerator, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(exec, log), nil
		},
	})
}
