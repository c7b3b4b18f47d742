// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/differ/internal/adapters/binexport"
	_ "go.trai.ch/differ/internal/adapters/config"
	_ "go.trai.ch/differ/internal/adapters/database"
	_ "go.trai.ch/differ/internal/adapters/differ"
	_ "go.trai.ch/differ/internal/adapters/fs"
	_ "go.trai.ch/differ/internal/adapters/linear"
	_ "go.trai.ch/differ/internal/adapters/logger"
	_ "go.trai.ch/differ/internal/adapters/resultlog"
	_ "go.trai.ch/differ/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/differ/internal/app"
)
