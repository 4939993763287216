package app

import "go.trai.ch/droid/internal/core/ports"

// Components holds the objects the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
