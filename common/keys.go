package common

// Key identifies a keyboard key. Values match GLFW key codes, which use
// ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key int

const (
	KeyW Key = 87 // W key (ASCII)
	KeyA Key = 65 // A key (ASCII)
	KeyS Key = 83 // S key (ASCII)
	KeyD Key = 68 // D key (ASCII)
	KeyQ Key = 81 // Q key (ASCII)
	KeyE Key = 69 // E key (ASCII)

	KeySpace  Key = 32  // Spacebar (ASCII)
	KeyEscape Key = 256 // Escape key (GLFW)

	KeyRight Key = 262 // Right arrow (GLFW)
	KeyLeft  Key = 263 // Left arrow (GLFW)
	KeyDown  Key = 264 // Down arrow (GLFW)
	KeyUp    Key = 265 // Up arrow (GLFW)

	KeyLeftShift  Key = 340 // Left Shift (GLFW)
	KeyRightShift Key = 344 // Right Shift (GLFW)
)

// MouseButton identifies a mouse button. Values match GLFW button codes.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Action describes a key or button state transition. Values match GLFW.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// ModifierKey is a bitmask of modifier keys held during an input event.
// Values match GLFW modifier flags.
type ModifierKey int

const (
	ModShift   ModifierKey = 0x0001
	ModControl ModifierKey = 0x0002
	ModAlt     ModifierKey = 0x0004
	ModSuper   ModifierKey = 0x0008
)
