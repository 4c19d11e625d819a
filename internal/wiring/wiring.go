// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/revwatch/internal/adapters/archive"
	_ "go.trai.ch/revwatch/internal/adapters/config"
	_ "go.trai.ch/revwatch/internal/adapters/logger"
	_ "go.trai.ch/revwatch/internal/adapters/metrics"
	_ "go.trai.ch/revwatch/internal/adapters/process"
	_ "go.trai.ch/revwatch/internal/adapters/sound"
	_ "go.trai.ch/revwatch/internal/adapters/unreal"
	_ "go.trai.ch/revwatch/internal/adapters/vcs"
	_ "go.trai.ch/revwatch/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/revwatch/internal/app"
	_ "go.trai.ch/revwatch/internal/engine/orchestrator"
)
