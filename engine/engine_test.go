package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/input"
	"github.com/vantage3d/vantage/engine/window"
)

// fakeWindow implements window.Window with a scripted clock and event
// queue, recording the loop's calls into a shared log.
type fakeWindow struct {
	now  float64
	step float64

	// script holds one event batch per frame; PollEvents moves the next
	// batch into the pending queue, mirroring the real backend where
	// callbacks fire during polling.
	script  [][]window.TimedEvent
	pending []window.TimedEvent

	frames    int
	maxFrames int
	closed    bool

	keys    map[common.Key]bool
	buttons map[common.MouseButton]bool

	log *[]string
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(maxFrames int, log *[]string) *fakeWindow {
	return &fakeWindow{
		step:      0.1,
		maxFrames: maxFrames,
		keys:      make(map[common.Key]bool),
		buttons:   make(map[common.MouseButton]bool),
		log:       log,
	}
}

func (w *fakeWindow) DrainEvents() []window.TimedEvent {
	*w.log = append(*w.log, "drain")
	drained := w.pending
	w.pending = nil
	return drained
}

func (w *fakeWindow) PollEvents() {
	*w.log = append(*w.log, "poll")
	if len(w.script) > 0 {
		w.pending = w.script[0]
		w.script = w.script[1:]
	}
	w.frames++
	if w.frames >= w.maxFrames {
		w.closed = true
	}
}

func (w *fakeWindow) KeyDown(key common.Key) bool { return w.keys[key] }
func (w *fakeWindow) MouseButtonDown(b common.MouseButton) bool { return w.buttons[b] }

func (w *fakeWindow) Time() float64 {
	w.now += w.step
	return w.now
}

func (w *fakeWindow) SwapBuffers() { *w.log = append(*w.log, "swap") }
func (w *fakeWindow) Clear() { *w.log = append(*w.log, "clear") }
func (w *fakeWindow) IsRunning() bool { return !w.closed }
func (w *fakeWindow) RequestClose() { w.closed = true }
func (w *fakeWindow) Close() error { w.closed = true; return nil }
func (w *fakeWindow) SetTitle(string) {}
func (w *fakeWindow) Width() int { return 800 }
func (w *fakeWindow) Height() int { return 600 }

// loopRecorder implements input.Controllable, logging dispatches.
type loopRecorder struct {
	name string
	log  *[]string
}

func (r *loopRecorder) OnMouse(_ input.MouseEvent, _ float64) {
	*r.log = append(*r.log, r.name+":mouse")
}

func (r *loopRecorder) OnKeyboard(_ input.KeyEvent, _ float64) {
	*r.log = append(*r.log, r.name+":key")
}

func (r *loopRecorder) OnInput(_ input.State, _ float64) {
	*r.log = append(*r.log, r.name+":input")
}

func TestRunSequencesFrameSteps(t *testing.T) {
	var log []string
	w := newFakeWindow(2, &log)
	// One cursor event arrives during the first frame's poll, so the
	// second frame dispatches it.
	w.script = [][]window.TimedEvent{
		{{Time: 0.1, Event: window.CursorEvent{X: 10, Y: 20}}},
	}

	e := NewEngine(
		WithWindow(w),
		WithControllable(&loopRecorder{name: "cam", log: &log}),
	)
	e.Run()

	assert.Equal(t, []string{
		// Frame 1: empty queue, poll picks up the scripted event.
		"drain", "cam:input", "clear", "swap", "poll",
		// Frame 2: the queued event is dispatched before the poll pass.
		"drain", "cam:mouse", "cam:input", "clear", "swap", "poll",
	}, log)
}

func TestRenderCallbackReplacesDefaultClear(t *testing.T) {
	var log []string
	w := newFakeWindow(1, &log)

	e := NewEngine(WithWindow(w))
	e.SetRenderCallback(func(eng Engine) {
		log = append(log, "render")
		assert.Same(t, w, eng.Window())
	})
	e.Run()

	assert.Contains(t, log, "render")
	assert.NotContains(t, log, "clear")
}

func TestDeltaTimeTracksClock(t *testing.T) {
	var log []string
	w := newFakeWindow(3, &log)
	w.step = 0.05

	e := NewEngine(WithWindow(w))
	e.Run()

	// The fake clock advances a fixed step per query.
	assert.InDelta(t, 0.05, e.DeltaTime(), 1e-9)
}

func TestQuitKeyClosesAfterCompletingTick(t *testing.T) {
	var log []string
	w := newFakeWindow(100, &log)
	w.pending = []window.TimedEvent{
		{Time: 0.1, Event: window.KeyEvent{Key: common.KeyEscape, Action: common.Press}},
	}

	e := NewEngine(
		WithWindow(w),
		WithControllable(&loopRecorder{name: "cam", log: &log}),
	)
	e.Run()

	// The close request fires during dispatch, but the tick's remaining
	// steps still run; the loop exits at the next boundary.
	assert.Equal(t, []string{
		"drain", "cam:key", "cam:input", "clear", "swap", "poll",
	}, log)
}

func TestQuitIsIdempotent(t *testing.T) {
	var log []string
	w := newFakeWindow(100, &log)

	e := NewEngine(WithWindow(w))
	e.Quit()
	e.Quit()

	assert.False(t, w.IsRunning())
	e.Run()
	assert.Empty(t, log)
}

func TestMidRunRegistrationVisibleNextTick(t *testing.T) {
	var log []string
	w := newFakeWindow(2, &log)

	e := NewEngine(WithWindow(w))
	registered := false
	e.SetRenderCallback(func(eng Engine) {
		log = append(log, "render")
		if !registered {
			eng.Register(&loopRecorder{name: "late", log: &log})
			registered = true
		}
	})
	e.Run()

	assert.Equal(t, []string{
		"drain", "render", "swap", "poll",
		"drain", "late:input", "render", "swap", "poll",
	}, log)
}

func TestHandleAccessFromOutsideLoop(t *testing.T) {
	var log []string
	w := newFakeWindow(1, &log)

	e := NewEngine(WithWindow(w))
	rec := &loopRecorder{name: "cam", log: &log}
	h := e.Register(rec)

	var got input.Controllable
	require.True(t, e.Controls().With(h, func(c input.Controllable) { got = c }))
	assert.Same(t, rec, got)
}

func TestRunWithoutWindowReturns(t *testing.T) {
	e := NewEngine()
	// Must not panic or block.
	e.Run()
	e.Quit()
}
