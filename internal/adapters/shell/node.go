package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/detector"
	"go.trai.ch/cargojni/internal/adapters/logger"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

// OutputModeEnv overrides output mode detection with "pty" or "pipe".
const OutputModeEnv = "CARGOJNI_OUTPUT"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			mode := detector.ResolveMode(os.Getenv(OutputModeEnv), detector.DetectEnvironment())
			return NewExecutor(log, WithPTY(mode == detector.ModePTY)), nil
		},
	})
}
