package rustc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/logger"
	"go.trai.ch/cargojni/internal/adapters/shell"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the host triple probe Graft node.
const NodeID graft.ID = "adapter.rustc_probe"

func init() {
	graft.Register(graft.Node[ports.HostTripleProbe]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.HostTripleProbe, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(exec, log), nil
		},
	})
}
