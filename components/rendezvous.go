package components

import "github.com/yohamta/donburi"

// RendezvousData stores the state of the address exchange screen
type RendezvousData struct {
	UseSTUN bool
	Input   InputScheme

	LocalAddress string // Mirrored from the rendezvous every frame
	PeerAddress  string // Edited by the operator
	Status       string
	StatusIsErr  bool

	ConnectClicked bool
	BackClicked    bool
	RetryClicked   bool

	Session *NetworkSession
	Back    bool
}

var Rendezvous = donburi.NewComponentType[RendezvousData]()
