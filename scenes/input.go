package scenes

import (
	"slices"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyMap = [cfg.KeyCount]ebiten.Key{
	cfg.KeyV:      ebiten.KeyV,
	cfg.KeyL:      ebiten.KeyL,
	cfg.KeyEnter:  ebiten.KeyEnter,
	cfg.KeyEscape: ebiten.KeyEscape,
	cfg.KeyTab:    ebiten.KeyTab,
	cfg.KeyLeft:   ebiten.KeyArrowLeft,
	cfg.KeyRight:  ebiten.KeyArrowRight,
	cfg.KeyUp:     ebiten.KeyArrowUp,
	cfg.KeyDown:   ebiten.KeyArrowDown,
}

var buttonMap = [cfg.ButtonCount]ebiten.StandardGamepadButton{
	cfg.ButtonA:           ebiten.StandardGamepadButtonRightBottom,
	cfg.ButtonB:           ebiten.StandardGamepadButtonRightRight,
	cfg.ButtonY:           ebiten.StandardGamepadButtonRightTop,
	cfg.ButtonStart:       ebiten.StandardGamepadButtonCenterRight,
	cfg.ButtonBumperLeft:  ebiten.StandardGamepadButtonFrontTopLeft,
	cfg.ButtonBumperRight: ebiten.StandardGamepadButtonFrontTopRight,
	cfg.ButtonThumbLeft:   ebiten.StandardGamepadButtonLeftStick,
	cfg.ButtonThumbRight:  ebiten.StandardGamepadButtonRightStick,
}

// EbitenInput reads keyboard, mouse and gamepads through ebiten.
// Gamepad slots are the connected gamepad IDs in ascending order.
type EbitenInput struct {
	gamepadIDs []ebiten.GamepadID
}

// Refresh re-reads the connected gamepads. Call once per frame before polling.
func (in *EbitenInput) Refresh() {
	in.gamepadIDs = ebiten.AppendGamepadIDs(in.gamepadIDs[:0])
	slices.Sort(in.gamepadIDs)
}

func (in *EbitenInput) IsKeyPressed(key cfg.Key) bool {
	return ebiten.IsKeyPressed(keyMap[key])
}

func (in *EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *EbitenInput) IsMouseLeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *EbitenInput) Gamepad(ix int) components.GamepadSnapshot {
	var snap components.GamepadSnapshot
	if ix < 0 || ix >= len(in.gamepadIDs) {
		return snap
	}
	gpID := in.gamepadIDs[ix]
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return snap
	}

	snap.Connected = true
	for btn, sbtn := range buttonMap {
		snap.Buttons[btn] = ebiten.IsStandardGamepadButtonPressed(gpID, sbtn)
	}
	snap.Stick[0] = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	snap.Stick[1] = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	return snap
}
