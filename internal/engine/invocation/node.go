package invocation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the invocation builder Graft node.
const NodeID graft.ID = "engine.invocation_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(log, domain.CurrentHost()), nil
		},
	})
}
