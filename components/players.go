package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// MaxPlayers is the size of a full player list
const MaxPlayers = 2

// InputKind is the kind of device a player controls with
type InputKind int

const (
	KeyboardLeft InputKind = iota
	KeyboardRight
	Gamepad
)

// InputScheme is a player's control binding. Two schemes are the same binding
// exactly when they compare equal.
type InputScheme struct {
	Kind   InputKind
	Device int // Gamepad slot, zero for keyboard schemes
}

func KeyboardLeftScheme() InputScheme  { return InputScheme{Kind: KeyboardLeft} }
func KeyboardRightScheme() InputScheme { return InputScheme{Kind: KeyboardRight} }
func GamepadScheme(device int) InputScheme {
	return InputScheme{Kind: Gamepad, Device: device}
}

func (s InputScheme) String() string {
	switch s.Kind {
	case KeyboardLeft:
		return "KeyboardLeft"
	case KeyboardRight:
		return "KeyboardRight"
	case Gamepad:
		return fmt.Sprintf("Gamepad(%d)", s.Device)
	default:
		return "Unknown"
	}
}

// PlayerListData is the ordered list of bound players; index 0 is player 1
type PlayerListData struct {
	Players []InputScheme
}

// Contains reports whether scheme is already bound
func (p *PlayerListData) Contains(scheme InputScheme) bool {
	for _, s := range p.Players {
		if s == scheme {
			return true
		}
	}
	return false
}

// Full reports whether no more players can be bound
func (p *PlayerListData) Full() bool {
	return len(p.Players) >= MaxPlayers
}

// Player returns the scheme of player i (0-based)
func (p *PlayerListData) Player(i int) (InputScheme, bool) {
	if i < 0 || i >= len(p.Players) {
		return InputScheme{}, false
	}
	return p.Players[i], true
}

var PlayerList = donburi.NewComponentType[PlayerListData]()
