package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vantage3d/vantage/common"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// newPlatformWindow creates the GLFW window with an OpenGL 4.1 core context,
// loads the GL function pointers, registers input callbacks that feed the
// raw event queue, and stores the result as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	// GLFW event processing and context creation must stay on one OS thread.
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required for core contexts on macOS.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return fmt.Errorf("failed to load OpenGL function pointers: %v", err)
	}

	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	// Register GLFW callbacks that translate raw notifications into queued
	// events. Normalization (offsets, scroll synthesis, quit key) happens in
	// the input dispatcher, not here.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.enqueue(KeyEvent{
			Key:      common.Key(key),
			Scancode: scancode,
			Action:   common.Action(action),
			Mods:     common.ModifierKey(mods),
		})
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.enqueue(CursorEvent{X: float32(xpos), Y: float32(ypos)})
	})

	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.enqueue(ScrollEvent{XOffset: float32(xoff), YOffset: float32(yoff)})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.enqueue(MouseButtonEvent{
			Button: common.MouseButton(button),
			Action: common.Action(action),
			Mods:   common.ModifierKey(mods),
		})
	})

	// Use the framebuffer size callback for pixel-accurate dimensions; on
	// high-DPI displays the framebuffer is larger than the window size.
	// The viewport is updated here so the GL state always matches the
	// surface, independent of what the render callback does.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		gl.Viewport(0, 0, int32(width), int32(height))
		w.enqueue(ResizeEvent{Width: width, Height: height})
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return nil
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared,
// or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformRequestClose flags the GLFW window to close. The frame loop
// observes this cooperatively at the next iteration boundary.
func platformRequestClose(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SetShouldClose(true)
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW
// library. Returns an error if the internal window has not been initialized.
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformPollEvents polls GLFW for pending events without blocking.
// Queued callbacks fire on the calling thread during this call.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformPollEvents() {
	glfw.PollEvents()
}

// platformTime returns seconds elapsed since GLFW initialization.
func platformTime() float64 {
	return glfw.GetTime()
}

// platformSwapBuffers presents the back buffer.
func platformSwapBuffers(w *engineWindow) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SwapBuffers()
}

// platformClear fills the back buffer with the configured clear color.
func platformClear(w *engineWindow) {
	c := w.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// platformKeyDown reports live key state from GLFW's cached input state.
func platformKeyDown(w *engineWindow, key common.Key) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.window.GetKey(glfw.Key(key)) == glfw.Press
}

// platformMouseButtonDown reports live mouse button state.
func platformMouseButtonDown(w *engineWindow, button common.MouseButton) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.window.GetMouseButton(glfw.MouseButton(button)) == glfw.Press
}

// platformSetTitle updates the native window title.
func platformSetTitle(w *engineWindow, title string) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.window.SetTitle(title)
}
