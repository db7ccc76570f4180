package window

// WindowBuilderOption is a functional option for configuring a Window.
type WindowBuilderOption func(*engineWindow)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title string displayed in the title bar
//
// Returns:
//   - WindowBuilderOption: functional option to set the title
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: width in pixels
//
// Returns:
//   - WindowBuilderOption: functional option to set the width
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: height in pixels
//
// Returns:
//   - WindowBuilderOption: functional option to set the height
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithVsync enables or disables synchronizing buffer swaps to the display
// refresh rate. Defaults to enabled.
//
// Parameters:
//   - vsync: true to synchronize swaps to the display
//
// Returns:
//   - WindowBuilderOption: functional option to set vsync
func WithVsync(vsync bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.vsync = vsync
	}
}

// WithClearColor sets the RGBA color used by the default clear.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - WindowBuilderOption: functional option to set the clear color
func WithClearColor(r, g, b, a float32) WindowBuilderOption {
	return func(w *engineWindow) {
		w.clearColor = [4]float32{r, g, b, a}
	}
}
