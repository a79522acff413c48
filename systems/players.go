package systems

import (
	"log"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerBinding binds newly pressed devices to free player slots.
// Must run AFTER UpdateInput.
func UpdatePlayerBinding(e *ecs.ECS) {
	BindPlayers(GetOrCreatePlayerList(e), GetOrCreateInput(e))
}

// BindPlayers appends a scheme for every join trigger that went down this frame:
// V binds the left keyboard half, L the right half and Start binds that gamepad.
// A scheme is only added if it is not bound yet and the list is not full.
func BindPlayers(players *components.PlayerListData, input *components.InputData) {
	if input.KeyJustPressed(cfg.Input.JoinKeyboardLeft) {
		BindPlayer(players, components.KeyboardLeftScheme())
	}
	if input.KeyJustPressed(cfg.Input.JoinKeyboardRight) {
		BindPlayer(players, components.KeyboardRightScheme())
	}
	for ix := range input.Pads {
		if input.Pads[ix].ButtonJustPressed(cfg.Input.JoinGamepad) {
			BindPlayer(players, components.GamepadScheme(ix))
		}
	}
}

// BindPlayer adds scheme as the next player. Returns false if it was already
// bound or both slots are taken.
func BindPlayer(players *components.PlayerListData, scheme components.InputScheme) bool {
	if players.Full() || players.Contains(scheme) {
		return false
	}
	players.Players = append(players.Players, scheme)
	log.Printf("[menu] player %d bound to %s", len(players.Players), scheme)
	return true
}

// GetOrCreatePlayerList returns the singleton PlayerList component, creating if needed
func GetOrCreatePlayerList(e *ecs.ECS) *components.PlayerListData {
	entry, ok := components.PlayerList.First(e.World)
	if !ok {
		entry = archetypes.PlayerList.Spawn(e)
	}
	return components.PlayerList.Get(entry)
}
