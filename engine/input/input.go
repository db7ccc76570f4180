// package input defines the normalized input event model, the Controllable
// capability interface, and the dispatch machinery that broadcasts events
// from a windowing backend to registered controllables.
package input

import "github.com/vantage3d/vantage/common"

// KeyEvent is a normalized keyboard state transition. Immutable value.
type KeyEvent struct {
	// Key is the virtual key identity.
	Key common.Key

	// Scancode is the platform-specific scancode for the key.
	Scancode int

	// Action is the transition kind: press, release, or repeat.
	Action common.Action

	// Mods are the modifier keys held when the transition occurred.
	Mods common.ModifierKey
}

// MouseButtonEvent is a normalized mouse button state transition.
// Delivered once per press/release transition, not polled.
type MouseButtonEvent struct {
	// Button is the mouse button identity.
	Button common.MouseButton

	// Action is the transition kind: press or release.
	Action common.Action

	// Mods are the modifier keys held when the transition occurred.
	Mods common.ModifierKey
}

// MouseEvent is a normalized mouse notification covering cursor motion,
// scroll input, and button transitions.
type MouseEvent struct {
	// XPos, YPos are the absolute cursor position in screen coordinates.
	// For scroll and button events this is the last known cursor position,
	// or (0, 0) if the cursor has never been seen.
	XPos, YPos float32

	// XOffset, YOffset are the deltas since the last known position for
	// cursor motion (YOffset inverted so positive means looking up), or the
	// raw wheel deltas for scroll input. Zero on the first motion event
	// after the last known position is unset, and on button events.
	XOffset, YOffset float32

	// IsScroll distinguishes scroll-wheel input from cursor motion.
	IsScroll bool

	// Button carries the button transition for mouse button events,
	// nil otherwise.
	Button *MouseButtonEvent
}

// State is the continuous-poll surface of the windowing backend: live
// key and button state, as opposed to queued transition events.
// Satisfied by window.Window.
type State interface {
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
}

// Controllable is the capability interface for any object that reacts to
// input: it receives discrete mouse and keyboard events each frame, plus a
// continuous-poll call with direct access to the backend's live input state.
//
// All three methods are invoked synchronously on the frame-loop thread while
// the controllable's registry lock is held.
type Controllable interface {
	// OnMouse handles a normalized mouse event (motion, scroll, or button).
	//
	// Parameters:
	//   - event: the normalized mouse event
	//   - deltaTime: seconds elapsed since the previous frame
	OnMouse(event MouseEvent, deltaTime float64)

	// OnKeyboard handles a normalized keyboard transition event.
	//
	// Parameters:
	//   - event: the normalized key event
	//   - deltaTime: seconds elapsed since the previous frame
	OnKeyboard(event KeyEvent, deltaTime float64)

	// OnInput is the per-frame continuous poll: the controllable reads live
	// key/button state and applies held-key behavior (e.g., movement).
	//
	// Parameters:
	//   - state: the backend's live input state
	//   - deltaTime: seconds elapsed since the previous frame
	OnInput(state State, deltaTime float64)
}
