package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/adapters/logger"
	"go.trai.ch/cargojni/internal/adapters/overrides"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, overrides.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			src, err := graft.Dep[ports.OverrideSource](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, src), nil
		},
	})
}
