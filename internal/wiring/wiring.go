// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "hubdeploy/internal/adapters/config"
	_ "hubdeploy/internal/adapters/hub"
	_ "hubdeploy/internal/adapters/logger"
	// Register the app node.
	_ "hubdeploy/internal/app"
)
