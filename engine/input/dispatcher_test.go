package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/window"
)

// capture implements Controllable, recording every event it receives.
type capture struct {
	mouse []MouseEvent
	keys  []KeyEvent
}

func (c *capture) OnMouse(event MouseEvent, _ float64)  { c.mouse = append(c.mouse, event) }
func (c *capture) OnKeyboard(event KeyEvent, _ float64) { c.keys = append(c.keys, event) }
func (c *capture) OnInput(_ State, _ float64)           {}

func newTestDispatcher(onClose func()) (*Dispatcher, *capture) {
	reg := NewRegistry()
	rec := &capture{}
	reg.Register(rec)
	return NewDispatcher(reg, onClose), rec
}

func cursor(x, y float32) window.TimedEvent {
	return window.TimedEvent{Event: window.CursorEvent{X: x, Y: y}}
}

func TestFirstMotionSeedsZeroOffset(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(cursor(640, 360), 0.016)

	require.Len(t, rec.mouse, 1)
	ev := rec.mouse[0]
	assert.Equal(t, float32(640), ev.XPos)
	assert.Equal(t, float32(360), ev.YPos)
	assert.Equal(t, float32(0), ev.XOffset)
	assert.Equal(t, float32(0), ev.YOffset)
	assert.False(t, ev.IsScroll)
}

func TestMotionOffsetsInvertVertical(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(cursor(640, 360), 0.016)
	d.Dispatch(cursor(650, 350), 0.016)

	require.Len(t, rec.mouse, 2)
	ev := rec.mouse[1]
	assert.Equal(t, float32(10), ev.XOffset)
	// Screen y decreased by 10 (cursor moved up), so the camera-space
	// offset is +10.
	assert.Equal(t, float32(10), ev.YOffset)
}

func TestScrollBeforeAnyMotion(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(window.TimedEvent{Event: window.ScrollEvent{XOffset: 0, YOffset: -1}}, 0.016)

	require.Len(t, rec.mouse, 1)
	ev := rec.mouse[0]
	assert.True(t, ev.IsScroll)
	assert.Equal(t, float32(0), ev.XPos)
	assert.Equal(t, float32(0), ev.YPos)
	assert.Equal(t, float32(-1), ev.YOffset)
}

func TestScrollCarriesLastKnownPosition(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(cursor(100, 200), 0.016)
	d.Dispatch(window.TimedEvent{Event: window.ScrollEvent{YOffset: 2}}, 0.016)

	require.Len(t, rec.mouse, 2)
	ev := rec.mouse[1]
	assert.True(t, ev.IsScroll)
	assert.Equal(t, float32(100), ev.XPos)
	assert.Equal(t, float32(200), ev.YPos)
	assert.Equal(t, float32(2), ev.YOffset)
}

func TestButtonEventCarriesPayload(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(window.TimedEvent{Event: window.MouseButtonEvent{
		Button: common.MouseButtonLeft,
		Action: common.Press,
		Mods:   common.ModShift,
	}}, 0.016)

	require.Len(t, rec.mouse, 1)
	ev := rec.mouse[0]
	require.NotNil(t, ev.Button)
	assert.Equal(t, common.MouseButtonLeft, ev.Button.Button)
	assert.Equal(t, common.Press, ev.Button.Action)
	assert.Equal(t, common.ModShift, ev.Button.Mods)
	assert.Equal(t, float32(0), ev.XOffset)
	assert.Equal(t, float32(0), ev.YOffset)
	assert.False(t, ev.IsScroll)
}

func TestKeyEventBroadcast(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(window.TimedEvent{Event: window.KeyEvent{
		Key:      common.KeyW,
		Scancode: 17,
		Action:   common.Press,
	}}, 0.016)

	require.Len(t, rec.keys, 1)
	assert.Equal(t, common.KeyW, rec.keys[0].Key)
	assert.Equal(t, 17, rec.keys[0].Scancode)
	assert.Equal(t, common.Press, rec.keys[0].Action)
}

func TestQuitKeyInterception(t *testing.T) {
	closed := false
	d, rec := newTestDispatcher(func() { closed = true })

	d.Dispatch(window.TimedEvent{Event: window.KeyEvent{
		Key:    common.KeyEscape,
		Action: common.Press,
	}}, 0.016)

	assert.True(t, closed)
	// Interception does not swallow the event; controllables still see it.
	require.Len(t, rec.keys, 1)
	assert.Equal(t, common.KeyEscape, rec.keys[0].Key)
}

func TestQuitKeyReleaseIgnored(t *testing.T) {
	closed := false
	d, _ := newTestDispatcher(func() { closed = true })

	d.Dispatch(window.TimedEvent{Event: window.KeyEvent{
		Key:    common.KeyEscape,
		Action: common.Release,
	}}, 0.016)

	assert.False(t, closed)
}

func TestResizeEventIgnored(t *testing.T) {
	d, rec := newTestDispatcher(nil)

	d.Dispatch(window.TimedEvent{Event: window.ResizeEvent{Width: 1024, Height: 768}}, 0.016)

	assert.Empty(t, rec.mouse)
	assert.Empty(t, rec.keys)
}

func TestBroadcastReachesAllControllablesInOrder(t *testing.T) {
	reg := NewRegistry()
	var log []string
	reg.Register(&recorder{name: "a", log: &log})
	reg.Register(&recorder{name: "b", log: &log})
	reg.Register(&recorder{name: "c", log: &log})
	d := NewDispatcher(reg, nil)

	d.Dispatch(cursor(0, 0), 0.016)
	d.Dispatch(window.TimedEvent{Event: window.KeyEvent{Key: common.KeyW, Action: common.Press}}, 0.016)

	assert.Equal(t, []string{
		"a:mouse", "b:mouse", "c:mouse",
		"a:key", "b:key", "c:key",
	}, log)
}
