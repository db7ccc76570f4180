package input

import (
	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/window"
)

// Dispatcher normalizes raw backend events into typed input events and
// broadcasts them synchronously to every registered controllable, in
// registration order. It owns the last known cursor position used to derive
// motion offsets.
type Dispatcher struct {
	registry *Registry

	// quitKey requests shutdown when pressed; interception happens before
	// controllable broadcast.
	quitKey      common.Key
	requestClose func()

	// lastMouse is the last known cursor position; unset until the first
	// cursor motion event arrives.
	lastMouse    [2]float32
	hasLastMouse bool
}

// NewDispatcher creates a dispatcher broadcasting to the given registry.
// The Escape key is intercepted as the quit key; requestClose is invoked
// on its press transition.
//
// Parameters:
//   - registry: the controllable registry to broadcast into
//   - requestClose: callback invoked when the quit key is pressed (may be nil)
//
// Returns:
//   - *Dispatcher: the newly created dispatcher
func NewDispatcher(registry *Registry, requestClose func()) *Dispatcher {
	return &Dispatcher{
		registry:     registry,
		quitKey:      common.KeyEscape,
		requestClose: requestClose,
	}
}

// Dispatch normalizes one raw backend event and broadcasts the result.
// Resize events carry no input semantics and are ignored here; the window
// backend updates its own viewport.
//
// Parameters:
//   - ev: the timestamped raw event drained from the backend
//   - deltaTime: seconds elapsed since the previous frame
func (d *Dispatcher) Dispatch(ev window.TimedEvent, deltaTime float64) {
	switch raw := ev.Event.(type) {
	case window.CursorEvent:
		d.mouseEvent(d.normalizeCursor(raw), deltaTime)
	case window.ScrollEvent:
		x, y := d.lastMouseOrZero()
		d.mouseEvent(MouseEvent{
			XPos:     x,
			YPos:     y,
			XOffset:  raw.XOffset,
			YOffset:  raw.YOffset,
			IsScroll: true,
		}, deltaTime)
	case window.MouseButtonEvent:
		x, y := d.lastMouseOrZero()
		d.mouseEvent(MouseEvent{
			XPos: x,
			YPos: y,
			Button: &MouseButtonEvent{
				Button: raw.Button,
				Action: raw.Action,
				Mods:   raw.Mods,
			},
		}, deltaTime)
	case window.KeyEvent:
		d.keyboardEvent(KeyEvent{
			Key:      raw.Key,
			Scancode: raw.Scancode,
			Action:   raw.Action,
			Mods:     raw.Mods,
		}, deltaTime)
	}
}

// normalizeCursor converts an absolute cursor position into a MouseEvent
// with offsets relative to the last known position. The first event after
// startup seeds the last known position so the offset is (0, 0) rather than
// a spurious jump. The vertical offset is inverted: screen y grows downward,
// camera pitch grows upward.
func (d *Dispatcher) normalizeCursor(raw window.CursorEvent) MouseEvent {
	if !d.hasLastMouse {
		d.lastMouse = [2]float32{raw.X, raw.Y}
		d.hasLastMouse = true
	}

	xOffset := raw.X - d.lastMouse[0]
	yOffset := d.lastMouse[1] - raw.Y

	d.lastMouse = [2]float32{raw.X, raw.Y}

	return MouseEvent{
		XPos:    raw.X,
		YPos:    raw.Y,
		XOffset: xOffset,
		YOffset: yOffset,
	}
}

// lastMouseOrZero returns the last known cursor position, or (0, 0) if no
// cursor motion has been observed yet.
func (d *Dispatcher) lastMouseOrZero() (float32, float32) {
	if !d.hasLastMouse {
		return 0, 0
	}
	return d.lastMouse[0], d.lastMouse[1]
}

// mouseEvent broadcasts a normalized mouse event to every controllable.
func (d *Dispatcher) mouseEvent(event MouseEvent, deltaTime float64) {
	d.registry.Broadcast(func(c Controllable) {
		c.OnMouse(event, deltaTime)
	})
}

// keyboardEvent intercepts the quit key, then broadcasts the event to every
// controllable. Interception is independent of controllable dispatch: the
// event still reaches all controllables after the close request.
func (d *Dispatcher) keyboardEvent(event KeyEvent, deltaTime float64) {
	if event.Key == d.quitKey && event.Action == common.Press && d.requestClose != nil {
		d.requestClose()
	}

	d.registry.Broadcast(func(c Controllable) {
		c.OnKeyboard(event, deltaTime)
	})
}
