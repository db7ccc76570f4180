package window

import (
	"sync"

	"github.com/vantage3d/vantage/common"
)

// Event is a raw backend input or window notification, before normalization
// by the input dispatcher. Concrete variants: KeyEvent, CursorEvent,
// ScrollEvent, MouseButtonEvent, ResizeEvent.
type Event interface {
	isEvent()
}

// KeyEvent is a raw keyboard state transition.
type KeyEvent struct {
	Key      common.Key
	Scancode int
	Action   common.Action
	Mods     common.ModifierKey
}

// CursorEvent is a raw cursor motion carrying the absolute position in
// screen coordinates (y grows downward).
type CursorEvent struct {
	X, Y float32
}

// ScrollEvent is a raw scroll-wheel notification carrying the wheel deltas.
type ScrollEvent struct {
	XOffset, YOffset float32
}

// MouseButtonEvent is a raw mouse button state transition.
type MouseButtonEvent struct {
	Button common.MouseButton
	Action common.Action
	Mods   common.ModifierKey
}

// ResizeEvent reports a framebuffer size change in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()         {}
func (CursorEvent) isEvent()      {}
func (ScrollEvent) isEvent()      {}
func (MouseButtonEvent) isEvent() {}
func (ResizeEvent) isEvent()      {}

// TimedEvent pairs a raw event with the backend clock time at which it
// was observed, in seconds since backend initialization.
type TimedEvent struct {
	Time  float64
	Event Event
}

// Window provides platform windowing, a rendering context, and input access.
// Wraps platform-specific window implementations with a common interface.
//
// Discrete state transitions are reported through the event queue
// (DrainEvents); live key and button state is available through the
// continuous-poll methods (KeyDown, MouseButtonDown).
type Window interface {
	// DrainEvents returns all raw events queued since the previous call and
	// clears the queue. Events are returned in the order they were observed.
	//
	// Returns:
	//   - []TimedEvent: the pending events, oldest first (nil if none)
	DrainEvents() []TimedEvent

	// PollEvents processes backend housekeeping, gathering new raw events
	// into the queue for the next DrainEvents call. Must be called from the
	// thread that created the window.
	PollEvents()

	// KeyDown reports whether the given key is currently held.
	//
	// Parameters:
	//   - key: the key to query
	//
	// Returns:
	//   - bool: true if the key is currently pressed
	KeyDown(key common.Key) bool

	// MouseButtonDown reports whether the given mouse button is currently held.
	//
	// Parameters:
	//   - button: the button to query
	//
	// Returns:
	//   - bool: true if the button is currently pressed
	MouseButtonDown(button common.MouseButton) bool

	// Time returns the backend clock in seconds since backend initialization.
	//
	// Returns:
	//   - float64: elapsed time in seconds
	Time() float64

	// SwapBuffers presents the back buffer to the screen.
	SwapBuffers()

	// Clear fills the back buffer with the window's configured clear color.
	Clear()

	// IsRunning returns true if the window is still active and no close
	// has been requested.
	//
	// Returns:
	//   - bool: true if window is running, false if closing or closed
	IsRunning() bool

	// RequestClose asks the window to close. The request is observed at the
	// next IsRunning check; no in-flight frame is interrupted.
	RequestClose()

	// Close destroys the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// SetTitle updates the window title.
	//
	// Parameters:
	//   - title: the new title string
	SetTitle(title string)

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, the raw event queue, and platform state.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// vsync enables synchronizing buffer swaps to the display refresh rate.
	vsync bool

	// clearColor is the RGBA color used by Clear.
	clearColor [4]float32

	// queueMu guards queue. Callbacks enqueue during PollEvents; external
	// tooling may drain from another goroutine between frames.
	queueMu sync.Mutex

	// queue holds raw events observed since the last DrainEvents call.
	queue []TimedEvent

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options and spawns the
// platform window with a live rendering context. Applies default values
// first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: error if platform window or context creation fails
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:      "Vantage",
		width:      800,
		height:     600,
		vsync:      true,
		clearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

// enqueue appends a raw event to the queue with the current backend time.
func (w *engineWindow) enqueue(ev Event) {
	t := platformTime()
	w.queueMu.Lock()
	w.queue = append(w.queue, TimedEvent{Time: t, Event: ev})
	w.queueMu.Unlock()
}

func (w *engineWindow) DrainEvents() []TimedEvent {
	w.queueMu.Lock()
	defer w.queueMu.Unlock()
	drained := w.queue
	w.queue = nil
	return drained
}

func (w *engineWindow) PollEvents() {
	platformPollEvents()
}

func (w *engineWindow) KeyDown(key common.Key) bool {
	return platformKeyDown(w, key)
}

func (w *engineWindow) MouseButtonDown(button common.MouseButton) bool {
	return platformMouseButtonDown(w, button)
}

func (w *engineWindow) Time() float64 {
	return platformTime()
}

func (w *engineWindow) SwapBuffers() {
	platformSwapBuffers(w)
}

func (w *engineWindow) Clear() {
	platformClear(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) SetTitle(title string) {
	w.title = title
	platformSetTitle(w, title)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
