package hub

import (
	"context"

	"github.com/grindlemire/graft"

	"hubdeploy/internal/core/domain"
	"hubdeploy/internal/core/ports"
)

// NodeID is the unique identifier for the hub client factory Graft node.
const NodeID graft.ID = "adapter.hub"

func init() {
	graft.Register(graft.Node[ports.HubClientFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HubClientFactory, error) {
			// The target is only known per invocation, after flags and
			// configuration have been merged, so the node provides a factory.
			return func(target domain.HubTarget) (ports.HubClient, error) {
				return NewClient(target)
			}, nil
		},
	})
}
