package linkerwrapper

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cargojni/internal/core/ports"
)

// NodeID is the unique identifier for the linker wrapper Graft node.
const NodeID graft.ID = "adapter.linker_wrapper"

func init() {
	graft.Register(graft.Node[ports.LinkerWrapperGenerator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LinkerWrapperGenerator, error) {
			return NewGenerator(), nil
		},
	})
}
