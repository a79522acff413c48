package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a scripted InputSource
type fakeSource struct {
	keys  map[cfg.Key]bool
	pads  [cfg.MaxGamepads]components.GamepadSnapshot
	x, y  int
	mouse bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{keys: map[cfg.Key]bool{}}
}

func (f *fakeSource) IsKeyPressed(key cfg.Key) bool { return f.keys[key] }
func (f *fakeSource) CursorPosition() (int, int)    { return f.x, f.y }
func (f *fakeSource) IsMouseLeftPressed() bool      { return f.mouse }
func (f *fakeSource) Gamepad(ix int) components.GamepadSnapshot {
	return f.pads[ix]
}

func (f *fakeSource) connect(ix int) {
	f.pads[ix].Connected = true
}

func (f *fakeSource) press(ix int, btn cfg.GamepadButton, down bool) {
	f.pads[ix].Buttons[btn] = down
}

// primedInput returns input after one empty poll, so later presses are edges
func primedInput(src *fakeSource) *components.InputData {
	input := &components.InputData{}
	PollInput(input, src)
	return input
}

func TestPollInput_HeldKeyFiresOnce(t *testing.T) {
	src := newFakeSource()
	input := primedInput(src)

	src.keys[cfg.KeyEnter] = true
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)

	for i := 0; i < 5; i++ {
		PollInput(input, src)
		assert.False(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)
		assert.True(t, GetAction(input, cfg.ActionMenuSelect).Pressed)
	}

	src.keys[cfg.KeyEnter] = false
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).JustReleased)
}

func TestPollInput_FirstPollIgnoresHeldInput(t *testing.T) {
	src := newFakeSource()
	src.keys[cfg.KeyEnter] = true
	src.connect(0)
	src.press(0, cfg.ButtonStart, true)
	src.mouse = true

	input := &components.InputData{}
	PollInput(input, src)

	assert.True(t, input.Primed)
	assert.False(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)
	assert.False(t, GetAction(input, cfg.ActionMenuStart).JustPressed)
	assert.False(t, input.MouseJustClicked())
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).Pressed)
}

func TestPollInput_HeldGamepadButtonFiresOnce(t *testing.T) {
	src := newFakeSource()
	src.connect(1)
	input := primedInput(src)

	src.press(1, cfg.ButtonA, true)
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)
	assert.True(t, ButtonJustPressed(input, cfg.ButtonA))
	assert.True(t, input.LastGamepad)

	PollInput(input, src)
	assert.False(t, GetAction(input, cfg.ActionMenuSelect).JustPressed)
	assert.False(t, ButtonJustPressed(input, cfg.ButtonA))
}

func TestPollInput_StickEdgesArePerDevice(t *testing.T) {
	src := newFakeSource()
	src.connect(0)
	src.connect(1)
	input := primedInput(src)

	src.pads[0].Stick = [2]float64{-1, 0}
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuLeft).JustPressed)

	// Pad 0 keeps holding left; pad 1 pushing left is a new edge
	src.pads[1].Stick = [2]float64{-0.9, 0}
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuLeft).JustPressed)

	PollInput(input, src)
	assert.False(t, GetAction(input, cfg.ActionMenuLeft).JustPressed)
	assert.True(t, GetAction(input, cfg.ActionMenuLeft).Pressed)
}

func TestPollInput_StickBelowThresholdIsIgnored(t *testing.T) {
	src := newFakeSource()
	src.connect(0)
	input := primedInput(src)

	src.pads[0].Stick = [2]float64{0, 0.3}
	PollInput(input, src)
	assert.False(t, GetAction(input, cfg.ActionMenuDown).Pressed)

	src.pads[0].Stick = [2]float64{0, 0.8}
	PollInput(input, src)
	assert.True(t, GetAction(input, cfg.ActionMenuDown).JustPressed)
}

func TestPollInput_ConnectWhileHeldIsNotAnEdge(t *testing.T) {
	src := newFakeSource()
	input := primedInput(src)

	src.connect(2)
	src.press(2, cfg.ButtonStart, true)
	PollInput(input, src)
	assert.False(t, ButtonJustPressed(input, cfg.ButtonStart))

	src.press(2, cfg.ButtonStart, false)
	PollInput(input, src)
	src.press(2, cfg.ButtonStart, true)
	PollInput(input, src)
	assert.True(t, ButtonJustPressed(input, cfg.ButtonStart))
}

func TestPollInput_DisconnectClearsPad(t *testing.T) {
	src := newFakeSource()
	src.connect(0)
	src.press(0, cfg.ButtonA, true)
	input := primedInput(src)
	require.True(t, input.Pads[0].Connected)

	src.pads[0] = components.GamepadSnapshot{}
	PollInput(input, src)
	assert.Equal(t, components.GamepadState{}, input.Pads[0])
	assert.False(t, GetAction(input, cfg.ActionMenuSelect).Pressed)
}

func TestPollInput_Mouse(t *testing.T) {
	src := newFakeSource()
	src.x, src.y = 10, 20
	input := primedInput(src)
	assert.False(t, input.MouseMoved())

	src.x = 11
	PollInput(input, src)
	assert.True(t, input.MouseMoved())
	assert.Equal(t, components.Cursor{X: 11, Y: 20}, input.Cursor)

	PollInput(input, src)
	assert.False(t, input.MouseMoved())

	src.mouse = true
	PollInput(input, src)
	assert.True(t, input.MouseJustClicked())
	PollInput(input, src)
	assert.False(t, input.MouseJustClicked())
}

func TestPollInput_LastDeviceTracksKeyboard(t *testing.T) {
	src := newFakeSource()
	src.connect(0)
	input := primedInput(src)

	src.press(0, cfg.ButtonA, true)
	PollInput(input, src)
	require.True(t, input.LastGamepad)

	src.keys[cfg.KeyDown] = true
	PollInput(input, src)
	assert.False(t, input.LastGamepad)
}
