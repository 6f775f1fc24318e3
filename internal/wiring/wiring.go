// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cargojni/internal/adapters/cas"
	_ "go.trai.ch/cargojni/internal/adapters/config"
	_ "go.trai.ch/cargojni/internal/adapters/fs"
	_ "go.trai.ch/cargojni/internal/adapters/linkerwrapper"
	_ "go.trai.ch/cargojni/internal/adapters/logger"
	_ "go.trai.ch/cargojni/internal/adapters/ndk"
	_ "go.trai.ch/cargojni/internal/adapters/overrides"
	_ "go.trai.ch/cargojni/internal/adapters/rustc"
	_ "go.trai.ch/cargojni/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/cargojni/internal/app"
	_ "go.trai.ch/cargojni/internal/engine/invocation"
)
