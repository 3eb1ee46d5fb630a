package app

import (
	"diffagent/internal/runtime"
	"context"
)

// SignalHandler is a facade for runtime.SignalHandler
// Deprecated: Use diffagent/internal/runtime.SignalHandler instead
type SignalHandler = runtime.SignalHandler

// NewSignalHandler creates a new signal handler
// Deprecated: Use diffagent/internal/runtime.NewSignalHandler instead
func NewSignalHandler(ctx context.Context) *SignalHandler {
	return runtime.NewSignalHandler(ctx)
}
