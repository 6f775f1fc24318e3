package overrides

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the override source Graft node.
const NodeID graft.ID = "adapter.overrides"

func init() {
	graft.Register(graft.Node[ports.OverrideSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OverrideSource, error) {
			return NewSource(), nil
		},
	})
}
