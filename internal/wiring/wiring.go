// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/melt/internal/adapters/config"
	_ "go.trai.ch/melt/internal/adapters/fs"
	_ "go.trai.ch/melt/internal/adapters/logger"
	_ "go.trai.ch/melt/internal/adapters/shell"
	_ "go.trai.ch/melt/internal/adapters/telemetry"
	_ "go.trai.ch/melt/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/melt/internal/app"
)
