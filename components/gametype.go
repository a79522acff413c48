package components

import (
	"net"

	"github.com/google/uuid"
)

// GameType is the configuration handed to the game once the menu is done.
// Implemented by LocalGame and *NetworkSession.
type GameType interface {
	isGameType()
}

// LocalGame is a two-player game on this machine
type LocalGame struct {
	Players []InputScheme
}

func (LocalGame) isGameType() {}

// NetworkSession is an established rendezvous: the bound socket plus what both
// peers agreed on out of band.
type NetworkSession struct {
	ID           uuid.UUID
	LocalAddress string
	PeerAddress  string
	PeerID       int // 0 for the peer whose address sorts greater
	Input        InputScheme
	Conn         *net.UDPConn
}

func (*NetworkSession) isGameType() {}

// MenuResult is what one frame of the main menu produced. A nil MenuResult
// means nothing was chosen yet.
type MenuResult interface {
	isMenuResult()
}

// DirectGame ends the menu with a ready game configuration
type DirectGame struct {
	Game GameType
}

// MatchmakerGame sends the player to the rendezvous screen
type MatchmakerGame struct {
	Stun  bool
	Input InputScheme
}

func (DirectGame) isMenuResult()     {}
func (MatchmakerGame) isMenuResult() {}
