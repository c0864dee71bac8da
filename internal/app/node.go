package app

import (
	"context"

	"github.com/grindlemire/graft"

	"hubdeploy/internal/adapters/config"
	"hubdeploy/internal/adapters/hub"
	"hubdeploy/internal/adapters/logger"
	"hubdeploy/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the wired application with the shared logger so the
// entry point can report errors through the same sink the app logs to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID, hub.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			factory, err := graft.Dep[ports.HubClientFactory](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, factory, log),
				Logger: log,
			}, nil
		},
	})
}
