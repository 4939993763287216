// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/droid/internal/adapters/config"
	_ "go.trai.ch/droid/internal/adapters/emit"
	_ "go.trai.ch/droid/internal/adapters/fingerprint"
	_ "go.trai.ch/droid/internal/adapters/hclfile"
	_ "go.trai.ch/droid/internal/adapters/logger"
	_ "go.trai.ch/droid/internal/adapters/platform"
	_ "go.trai.ch/droid/internal/adapters/store"
	// Register app and engine nodes.
	_ "go.trai.ch/droid/internal/app"
	_ "go.trai.ch/droid/internal/engine/resolver"
)
