package components

import (
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// GamepadSnapshot is the raw state of one gamepad slot as reported by the backend
type GamepadSnapshot struct {
	Connected bool
	Buttons   [cfg.ButtonCount]bool
	Stick     [2]float64 // Left stick: [0] horizontal, [1] vertical (negative is up)
}

// GamepadState carries the current and previous frame of one gamepad slot.
// Edges are always computed per device.
type GamepadState struct {
	Connected   bool
	Buttons     [cfg.ButtonCount]bool
	PrevButtons [cfg.ButtonCount]bool
	Stick       [2]float64
	PrevStick   [2]float64
}

// ButtonJustPressed reports a rising edge of btn on this device
func (g *GamepadState) ButtonJustPressed(btn cfg.GamepadButton) bool {
	return g.Connected && g.Buttons[btn] && !g.PrevButtons[btn]
}

// Cursor is a mouse position in logical screen pixels
type Cursor struct {
	X, Y int
}

// InputData stores the current and previous frame of every polled device and
// the actions derived from them. Used for menu input where all devices are merged.
type InputData struct {
	Keys        [cfg.KeyCount]bool
	PrevKeys    [cfg.KeyCount]bool
	Pads        [cfg.MaxGamepads]GamepadState
	Cursor      Cursor
	PrevCursor  Cursor
	MouseLeft   bool
	PrevMouse   bool
	Actions     [cfg.ActionCount]ActionState
	Primed      bool // First poll done; previous buffers hold real data
	LastGamepad bool // Most recent input came from a gamepad (for UI prompts)
}

// KeyJustPressed reports a rising edge of key
func (in *InputData) KeyJustPressed(key cfg.Key) bool {
	return in.Keys[key] && !in.PrevKeys[key]
}

// MouseMoved reports whether the cursor moved since the previous frame
func (in *InputData) MouseMoved() bool {
	return in.Cursor != in.PrevCursor
}

// MouseJustClicked reports a rising edge of the left mouse button
func (in *InputData) MouseJustClicked() bool {
	return in.MouseLeft && !in.PrevMouse
}

var Input = donburi.NewComponentType[InputData]()
