package systems

import (
	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports the raw state of the input devices for the current frame.
// The ebiten backend lives in the scenes package; tests script their own.
type InputSource interface {
	IsKeyPressed(key cfg.Key) bool
	CursorPosition() (x, y int)
	IsMouseLeftPressed() bool
	// Gamepad returns the state of slot ix (0 <= ix < cfg.MaxGamepads).
	// Empty slots report Connected == false.
	Gamepad(ix int) components.GamepadSnapshot
}

// NewUpdateInput creates the system that polls src into the InputData component.
// Must run BEFORE every other menu system.
func NewUpdateInput(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		PollInput(GetOrCreateInput(e), src)
	}
}

// PollInput advances input by one frame: current state becomes previous, fresh
// state is read from src and actions are derived. The very first poll copies the
// fresh state into the previous buffers so that anything still held from an
// earlier screen does not register as a press.
func PollInput(input *components.InputData, src InputSource) {
	input.PrevKeys = input.Keys
	input.PrevCursor = input.Cursor
	input.PrevMouse = input.MouseLeft
	for ix := range input.Pads {
		pad := &input.Pads[ix]
		pad.PrevButtons = pad.Buttons
		pad.PrevStick = pad.Stick
	}

	for k := cfg.Key(0); k < cfg.KeyCount; k++ {
		input.Keys[k] = src.IsKeyPressed(k)
	}
	input.Cursor.X, input.Cursor.Y = src.CursorPosition()
	input.MouseLeft = src.IsMouseLeftPressed()

	for ix := range input.Pads {
		snap := src.Gamepad(ix)
		pad := &input.Pads[ix]
		if !snap.Connected {
			*pad = components.GamepadState{}
			continue
		}
		if !pad.Connected {
			// Freshly connected: no edges until the next frame
			pad.PrevButtons = snap.Buttons
			pad.PrevStick = snap.Stick
		}
		pad.Connected = true
		pad.Buttons = snap.Buttons
		pad.Stick = snap.Stick
	}

	if !input.Primed {
		input.PrevKeys = input.Keys
		input.PrevCursor = input.Cursor
		input.PrevMouse = input.MouseLeft
		for ix := range input.Pads {
			input.Pads[ix].PrevButtons = input.Pads[ix].Buttons
			input.Pads[ix].PrevStick = input.Pads[ix].Stick
		}
		input.Primed = true
	}

	updateActions(input)
}

func updateActions(input *components.InputData) {
	var keyboardUsed, gamepadUsed bool

	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		binding, ok := cfg.Input.Bindings[id]
		if !ok {
			input.Actions[id] = components.ActionState{}
			continue
		}

		var pressed, wasPressed, edge bool
		for _, key := range binding.Keys {
			pressed = pressed || input.Keys[key]
			wasPressed = wasPressed || input.PrevKeys[key]
			if input.KeyJustPressed(key) {
				edge = true
				keyboardUsed = true
			}
		}
		for ix := range input.Pads {
			pad := &input.Pads[ix]
			if !pad.Connected {
				continue
			}
			for _, btn := range binding.Buttons {
				pressed = pressed || pad.Buttons[btn]
				wasPressed = wasPressed || pad.PrevButtons[btn]
				if pad.ButtonJustPressed(btn) {
					edge = true
					gamepadUsed = true
				}
			}
			if binding.Stick != cfg.StickNone {
				now := stickPushed(pad.Stick, binding.Stick)
				before := stickPushed(pad.PrevStick, binding.Stick)
				pressed = pressed || now
				wasPressed = wasPressed || before
				if now && !before {
					edge = true
					gamepadUsed = true
				}
			}
		}

		input.Actions[id] = components.ActionState{
			Pressed:      pressed,
			JustPressed:  edge,
			JustReleased: !pressed && wasPressed,
		}
	}

	if gamepadUsed {
		input.LastGamepad = true
	} else if keyboardUsed {
		input.LastGamepad = false
	}
}

// stickPushed reports whether stick is deflected past the threshold in dir
func stickPushed(stick [2]float64, dir cfg.StickDirection) bool {
	t := cfg.Input.StickThreshold
	switch dir {
	case cfg.StickLeft:
		return stick[0] < -t
	case cfg.StickRight:
		return stick[0] > t
	case cfg.StickUp:
		return stick[1] < -t
	case cfg.StickDown:
		return stick[1] > t
	}
	return false
}

// ButtonJustPressed reports whether btn went down this frame on any gamepad
func ButtonJustPressed(input *components.InputData, btn cfg.GamepadButton) bool {
	for ix := range input.Pads {
		if input.Pads[ix].ButtonJustPressed(btn) {
			return true
		}
	}
	return false
}

// GetAction returns the full ActionState for an action ID
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Actions[id]
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
		// Zero-value InputData is correct (all released, not primed)
	}
	return components.Input.Get(entry)
}
