package systems

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/network"
	"github.com/yohamta/donburi/ecs"
)

// RendezvousPeer is the part of network.Rendezvous the address exchange screen drives
type RendezvousPeer interface {
	State() network.State
	LastError() error
	LocalAddress() string
	Connect(peer string, input components.InputScheme) (*components.NetworkSession, error)
}

// NewUpdateRendezvous creates the address exchange system.
// onRetry restarts the rendezvous with the given STUN setting, onSession is
// called once with the established session and onBack when the player backs out.
func NewUpdateRendezvous(rv RendezvousPeer, onRetry func(useSTUN bool), onSession func(*components.NetworkSession), onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		data := GetOrCreateRendezvous(e)
		if data.Session != nil || data.Back {
			return
		}

		retry := UpdateRendezvous(data, rv, GetOrCreateInput(e))
		switch {
		case data.Back:
			if onBack != nil {
				onBack()
			}
		case data.Session != nil:
			if onSession != nil {
				onSession(data.Session)
			}
		case retry:
			data.LocalAddress = ""
			if onRetry != nil {
				onRetry(data.UseSTUN)
			}
		}
	}
}

// UpdateRendezvous runs one frame of the address exchange. It returns true
// when the local endpoint should be set up again.
func UpdateRendezvous(data *components.RendezvousData, rv RendezvousPeer, input *components.InputData) bool {
	defer clearRendezvousClicks(data)

	if data.BackClicked || GetAction(input, cfg.ActionMenuBack).JustPressed {
		data.Back = true
		return false
	}

	confirm := data.ConnectClicked || GetAction(input, cfg.ActionMenuSelect).JustPressed

	state := rv.State()
	if state != network.StateHandedOff && GetAction(input, cfg.ActionMenuToggle).JustPressed {
		data.UseSTUN = !data.UseSTUN
		setStatus(data, "Restarting...", false)
		return true
	}

	switch state {
	case network.StateIdle, network.StateBinding:
		setStatus(data, "Binding local port...", false)
	case network.StateResolving:
		setStatus(data, "Asking "+cfg.Network.STUNServer+" for the public address...", false)
	case network.StateError:
		msg := "Could not get the local address"
		if err := rv.LastError(); err != nil {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		setStatus(data, msg, true)
		if data.RetryClicked || confirm {
			setStatus(data, "Restarting...", false)
			return true
		}
	case network.StateReady:
		// Restored every frame so the field stays read-only
		data.LocalAddress = rv.LocalAddress()
		if !data.StatusIsErr {
			setStatus(data, "Send your address to the opponent, paste theirs, then Connect (A) (Enter)", false)
		}
		if confirm && strings.TrimSpace(data.PeerAddress) != "" {
			connect(data, rv)
		}
	}
	return false
}

func connect(data *components.RendezvousData, rv RendezvousPeer) {
	session, err := rv.Connect(data.PeerAddress, data.Input)
	if err != nil {
		switch {
		case errors.Is(err, network.ErrSameAddress):
			setStatus(data, "That is your own address, paste the opponent's", true)
		case errors.Is(err, network.ErrInvalidPeerAddress):
			setStatus(data, "Opponent address must look like 203.0.113.7:40000", true)
		default:
			setStatus(data, err.Error(), true)
		}
		return
	}
	data.Session = session
	setStatus(data, fmt.Sprintf("Connected as peer %d", session.PeerID), false)
}

func setStatus(data *components.RendezvousData, msg string, isErr bool) {
	data.Status = msg
	data.StatusIsErr = isErr
}

func clearRendezvousClicks(data *components.RendezvousData) {
	data.ConnectClicked = false
	data.BackClicked = false
	data.RetryClicked = false
}

// GetOrCreateRendezvous returns the singleton Rendezvous component, creating if needed
func GetOrCreateRendezvous(e *ecs.ECS) *components.RendezvousData {
	entry, ok := components.Rendezvous.First(e.World)
	if !ok {
		entry = archetypes.Rendezvous.Spawn(e)
	}
	return components.Rendezvous.Get(entry)
}
