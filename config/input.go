package config

// Key identifies a keyboard key the menu listens to. The ebiten backend maps
// these to ebiten.Key so this package stays free of graphics dependencies.
type Key int

const (
	KeyV Key = iota
	KeyL
	KeyEnter
	KeyEscape
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCount // Must be last - used for array sizing
)

// GamepadButton identifies a standard-layout gamepad button
type GamepadButton int

const (
	ButtonA GamepadButton = iota
	ButtonB
	ButtonY
	ButtonStart
	ButtonBumperLeft
	ButtonBumperRight
	ButtonThumbLeft
	ButtonThumbRight
	ButtonCount // Must be last - used for array sizing
)

// StickDirection is one of the four left-stick edge directions
type StickDirection int

const (
	StickNone StickDirection = iota
	StickLeft
	StickRight
	StickUp
	StickDown
)

// MaxGamepads is the number of gamepad slots polled every frame
const MaxGamepads = 4

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuStart
	ActionMenuBack
	ActionMenuToggle
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, buttons and stick directions bound to an action
type InputBinding struct {
	Keys    []Key
	Buttons []GamepadButton
	Stick   StickDirection
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Stick deflection past which a direction counts as pushed
	StickThreshold float64
	// Player binding triggers
	JoinKeyboardLeft  Key
	JoinKeyboardRight Key
	JoinGamepad       GamepadButton
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		StickThreshold:    0.5,
		JoinKeyboardLeft:  KeyV,
		JoinKeyboardRight: KeyL,
		JoinGamepad:       ButtonStart,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys:  []Key{KeyUp},
				Stick: StickUp,
			},
			ActionMenuDown: {
				Keys:  []Key{KeyDown},
				Stick: StickDown,
			},
			ActionMenuLeft: {
				Keys:    []Key{KeyLeft},
				Buttons: []GamepadButton{ButtonBumperLeft, ButtonThumbLeft},
				Stick:   StickLeft,
			},
			ActionMenuRight: {
				Keys:    []Key{KeyRight},
				Buttons: []GamepadButton{ButtonBumperRight, ButtonThumbRight},
				Stick:   StickRight,
			},
			ActionMenuSelect: {
				Keys: []Key{KeyEnter},
				// A / Cross button
				Buttons: []GamepadButton{ButtonA},
			},
			ActionMenuStart: {
				Buttons: []GamepadButton{ButtonStart},
			},
			ActionMenuBack: {
				Keys: []Key{KeyEscape},
				// B / Circle button
				Buttons: []GamepadButton{ButtonB},
			},
			ActionMenuToggle: {
				Keys:    []Key{KeyTab},
				Buttons: []GamepadButton{ButtonY},
			},
		},
	}
}
