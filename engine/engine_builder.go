package engine

import (
	"github.com/vantage3d/vantage/engine/input"
	"github.com/vantage3d/vantage/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engineImpl)

// WithWindow attaches the windowing backend the engine drives.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: functional option to attach the window
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engineImpl) {
		e.window = w
	}
}

// WithControllable registers a controllable at construction time.
// May be passed multiple times; dispatch order follows option order.
//
// Parameters:
//   - ctrl: the controllable to register
//
// Returns:
//   - EngineBuilderOption: functional option to register the controllable
func WithControllable(ctrl input.Controllable) EngineBuilderOption {
	return func(e *engineImpl) {
		e.controls.Register(ctrl)
	}
}

// WithRenderCallback sets the per-frame render callback.
//
// Parameters:
//   - callback: function to call each frame with the engine
//
// Returns:
//   - EngineBuilderOption: functional option to set the render callback
func WithRenderCallback(callback func(Engine)) EngineBuilderOption {
	return func(e *engineImpl) {
		e.renderCallback = callback
	}
}

// WithProfiling enables or disables frame statistics output.
//
// Parameters:
//   - enabled: true to log frame statistics
//
// Returns:
//   - EngineBuilderOption: functional option to set profiling
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engineImpl) {
		e.profilingEnabled = enabled
	}
}
