package systems

import (
	"log"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the main menu system. onResult is called once, on the
// frame the menu produces a DirectGame or MatchmakerGame.
// Must run AFTER UpdateInput and UpdatePlayerBinding.
func NewUpdateMenu(onResult func(components.MenuResult)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		if menu.Result != nil {
			return
		}

		res := UpdateMenu(menu, GetOrCreatePlayerList(e), GetOrCreateInput(e))
		if res == nil {
			return
		}
		menu.Result = res
		if onResult != nil {
			onResult(res)
		}
	}
}

// UpdateMenu runs one frame of the tab controller and the active tab's flow.
// Returns nil until something is chosen.
func UpdateMenu(menu *components.MainMenuData, players *components.PlayerListData, input *components.InputData) components.MenuResult {
	defer clearMenuClicks(menu)

	if menu.TabClicked != nil {
		menu.Tab = *menu.TabClicked
	}
	// With two tabs going left and right is the same thing
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		menu.Tab = (menu.Tab + 1) % components.TabCount
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		menu.Tab = (menu.Tab + 1) % components.TabCount
	}

	switch menu.Tab {
	case components.TabLocal:
		return localGame(menu, players, input)
	case components.TabNetwork:
		return networkGame(menu, players, input)
	}
	return nil
}

// localGame waits for exactly two players and a confirm
func localGame(menu *components.MainMenuData, players *components.PlayerListData, input *components.InputData) components.MenuResult {
	if len(players.Players) != components.MaxPlayers {
		return nil
	}
	if !menu.ReadyClicked && !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return nil
	}

	bound := make([]components.InputScheme, len(players.Players))
	copy(bound, players.Players)
	log.Printf("[menu] local game: %v", bound)
	return components.DirectGame{Game: components.LocalGame{Players: bound}}
}

// networkGame needs player 1 bound; confirm moves on to the rendezvous
func networkGame(menu *components.MainMenuData, players *components.PlayerListData, input *components.InputData) components.MenuResult {
	if menu.STUNClicked || GetAction(input, cfg.ActionMenuToggle).JustPressed {
		menu.UseSTUN = !menu.UseSTUN
	}

	scheme, ok := players.Player(0)
	if !ok {
		return nil
	}
	if !menu.ConnectClicked && !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return nil
	}

	log.Printf("[menu] network game: input=%s stun=%t", scheme, menu.UseSTUN)
	return components.MatchmakerGame{Stun: menu.UseSTUN, Input: scheme}
}

func clearMenuClicks(menu *components.MainMenuData) {
	menu.ReadyClicked = false
	menu.ConnectClicked = false
	menu.STUNClicked = false
	menu.TabClicked = nil
}

// PlayerStatus returns the per-slot connection text shown by the local tab
func PlayerStatus(players *components.PlayerListData, slot int) string {
	scheme, ok := players.Player(slot)
	if !ok {
		return "Not connected"
	}
	return "Connected! (" + scheme.String() + ")"
}

// GetOrCreateMenu returns the singleton MainMenu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MainMenuData {
	if _, ok := components.MainMenu.First(e.World); !ok {
		ent := archetypes.MainMenu.Spawn(e)
		components.MainMenu.SetValue(ent, components.MainMenuData{
			Tab:     components.TabLocal,
			UseSTUN: cfg.Network.UseSTUN,
		})
	}

	ent, _ := components.MainMenu.First(e.World)
	return components.MainMenu.Get(ent)
}
