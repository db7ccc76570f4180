package engine

import (
	"log"
	"sync"

	"github.com/vantage3d/vantage/engine/input"
	"github.com/vantage3d/vantage/engine/profiler"
	"github.com/vantage3d/vantage/engine/window"
)

// Timing holds per-frame time state in backend clock seconds.
type Timing struct {
	// DeltaTime is the time between the current frame and the last frame.
	DeltaTime float64

	// LastFrame is the backend clock timestamp of the previous frame.
	LastFrame float64
}

// engineImpl is the implementation of the Engine interface.
// Drives the single-threaded frame loop: timing, event dispatch, continuous
// input polling, rendering, and buffer presentation.
type engineImpl struct {
	window     window.Window
	controls   *input.Registry
	dispatcher *input.Dispatcher

	timing Timing

	renderCallback func(Engine)

	profiler         *profiler.Profiler
	profilingEnabled bool

	quitOnce sync.Once
}

// Engine is the frame loop orchestrator. It owns the windowing backend, a
// registry of controllables, and per-frame timing. Each frame it computes
// the delta time, drains and dispatches backend events, runs the continuous
// input poll, invokes the render callback (or a default clear), presents
// the frame, and polls the backend for the next tick's events.
type Engine interface {
	// Window returns the underlying windowing backend.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Register adds a controllable to the dispatch registry. Controllables
	// receive events and polls in registration order. Safe to call mid-run;
	// the registration becomes visible the following tick.
	//
	// Parameters:
	//   - ctrl: the controllable to register
	//
	// Returns:
	//   - input.Handle: stable handle identifying the registration
	Register(ctrl input.Controllable) input.Handle

	// Controls returns the controllable registry, for handle-based access
	// to registered controllables from outside the frame loop.
	//
	// Returns:
	//   - *input.Registry: the registry
	Controls() *input.Registry

	// SetRenderCallback registers the function called once per frame to
	// draw. The callback receives the engine for access to the window and
	// timing. When nil, the engine performs a default clear instead.
	//
	// Parameters:
	//   - callback: function to call each frame (or nil to use the default clear)
	SetRenderCallback(callback func(Engine))

	// DeltaTime returns the seconds elapsed between the two most recent
	// frames.
	//
	// Returns:
	//   - float64: delta time in seconds
	DeltaTime() float64

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// Run drives the frame loop on the calling goroutine, blocking until
	// the window reports a close request or Quit is called. The thread must
	// be the one that created the window.
	Run()

	// Quit requests a cooperative shutdown: the loop exits at the next
	// iteration boundary, after the current tick's remaining steps.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engineImpl{}

// NewEngine creates a new Engine with the provided options. A window must
// be attached via WithWindow before Run is called.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engineImpl{
		controls: input.NewRegistry(),
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	e.dispatcher = input.NewDispatcher(e.controls, e.Quit)

	return e
}

func (e *engineImpl) Window() window.Window {
	return e.window
}

func (e *engineImpl) Register(ctrl input.Controllable) input.Handle {
	return e.controls.Register(ctrl)
}

func (e *engineImpl) Controls() *input.Registry {
	return e.controls
}

func (e *engineImpl) SetRenderCallback(callback func(Engine)) {
	e.renderCallback = callback
}

func (e *engineImpl) DeltaTime() float64 {
	return e.timing.DeltaTime
}

func (e *engineImpl) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engineImpl) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engineImpl) Run() {
	if e.window == nil {
		log.Print("[engine] no window attached, nothing to run")
		return
	}

	e.timing.LastFrame = e.window.Time()

	for e.window.IsRunning() {
		e.tick()
	}
}

// tick executes one frame: timing, event dispatch, continuous input poll,
// render, present, and backend housekeeping, in that fixed order. A close
// request observed mid-tick does not abort the remaining steps; the loop
// condition picks it up at the next iteration boundary.
func (e *engineImpl) tick() {
	now := e.window.Time()
	e.timing.DeltaTime = now - e.timing.LastFrame
	e.timing.LastFrame = now

	// Drain all raw events gathered since the previous tick and broadcast
	// each to every controllable in registration order.
	for _, ev := range e.window.DrainEvents() {
		e.dispatcher.Dispatch(ev, e.timing.DeltaTime)
	}

	// Continuous poll: controllables read live key/button state for
	// held-key behavior such as movement.
	e.controls.Broadcast(func(c input.Controllable) {
		c.OnInput(e.window, e.timing.DeltaTime)
	})

	if e.renderCallback != nil {
		e.renderCallback(e)
	} else {
		e.window.Clear()
	}
	e.window.SwapBuffers()

	// Gather new raw events for the next tick to drain.
	e.window.PollEvents()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engineImpl) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}
