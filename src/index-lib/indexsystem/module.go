package indexsystem

import "go.uber.org/fx"

// Module provides the index system for injection using fx.
var Module = fx.Options(
	fx.Provide(New),
)
