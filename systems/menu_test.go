package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuHarness struct {
	src     *fakeSource
	input   *components.InputData
	menu    *components.MainMenuData
	players *components.PlayerListData
}

func newMenuHarness() *menuHarness {
	src := newFakeSource()
	return &menuHarness{
		src:     src,
		input:   primedInput(src),
		menu:    &components.MainMenuData{Tab: components.TabLocal},
		players: &components.PlayerListData{},
	}
}

// step runs one frame with keys held and releases them in the source. The
// release is only seen by the next step.
func (h *menuHarness) step(keys ...cfg.Key) components.MenuResult {
	for _, k := range keys {
		h.src.keys[k] = true
	}
	PollInput(h.input, h.src)
	BindPlayers(h.players, h.input)
	res := UpdateMenu(h.menu, h.players, h.input)
	for _, k := range keys {
		h.src.keys[k] = false
	}
	return res
}

func TestUpdateMenu_LeftAndRightToggleTab(t *testing.T) {
	h := newMenuHarness()

	h.step(cfg.KeyRight)
	assert.Equal(t, components.TabNetwork, h.menu.Tab)
	h.step()
	h.step(cfg.KeyRight)
	assert.Equal(t, components.TabLocal, h.menu.Tab)
	h.step()
	h.step(cfg.KeyLeft)
	assert.Equal(t, components.TabNetwork, h.menu.Tab)
	h.step()

	// Both directions in one frame cancel out
	h.step(cfg.KeyLeft, cfg.KeyRight)
	assert.Equal(t, components.TabNetwork, h.menu.Tab)
}

func TestUpdateMenu_BumperTogglesTab(t *testing.T) {
	h := newMenuHarness()
	h.src.connect(0)
	h.step()

	h.src.press(0, cfg.ButtonBumperRight, true)
	h.step()
	assert.Equal(t, components.TabNetwork, h.menu.Tab)

	// Held bumper does not keep switching
	h.step()
	assert.Equal(t, components.TabNetwork, h.menu.Tab)
}

func TestUpdateMenu_TabClick(t *testing.T) {
	h := newMenuHarness()
	tab := components.TabNetwork
	h.menu.TabClicked = &tab

	h.step()
	assert.Equal(t, components.TabNetwork, h.menu.Tab)
	assert.Nil(t, h.menu.TabClicked)
}

func TestUpdateMenu_LocalNeedsTwoPlayers(t *testing.T) {
	h := newMenuHarness()

	assert.Nil(t, h.step(cfg.KeyEnter))
	h.menu.ReadyClicked = true
	assert.Nil(t, h.step())
	assert.False(t, h.menu.ReadyClicked)

	h.step(cfg.KeyV)
	require.Len(t, h.players.Players, 1)
	assert.Nil(t, h.step(cfg.KeyEnter))
	h.menu.ReadyClicked = true
	assert.Nil(t, h.step())

	h.step(cfg.KeyL)
	require.Len(t, h.players.Players, 2)

	res := h.step(cfg.KeyEnter)
	require.IsType(t, components.DirectGame{}, res)
	game := res.(components.DirectGame).Game
	require.IsType(t, components.LocalGame{}, game)
	assert.Equal(t, []components.InputScheme{
		components.KeyboardLeftScheme(),
		components.KeyboardRightScheme(),
	}, game.(components.LocalGame).Players)
}

func TestUpdateMenu_LocalReadyClick(t *testing.T) {
	h := newMenuHarness()
	h.players.Players = []components.InputScheme{
		components.GamepadScheme(1),
		components.KeyboardLeftScheme(),
	}

	assert.Nil(t, h.step())
	h.menu.ReadyClicked = true
	res := h.step()
	require.IsType(t, components.DirectGame{}, res)

	// The result owns its own copy of the list
	h.players.Players[0] = components.GamepadScheme(3)
	game := res.(components.DirectGame).Game.(components.LocalGame)
	assert.Equal(t, components.GamepadScheme(1), game.Players[0])
}

func TestUpdateMenu_NetworkNeedsPlayerOne(t *testing.T) {
	h := newMenuHarness()
	h.menu.Tab = components.TabNetwork
	h.menu.UseSTUN = true

	h.menu.ConnectClicked = true
	assert.Nil(t, h.step())
	assert.Nil(t, h.step(cfg.KeyEnter))

	h.step(cfg.KeyL)
	res := h.step(cfg.KeyEnter)
	assert.Equal(t, components.MatchmakerGame{Stun: true, Input: components.KeyboardRightScheme()}, res)
}

func TestUpdateMenu_NetworkSTUNToggle(t *testing.T) {
	h := newMenuHarness()
	h.menu.Tab = components.TabNetwork
	h.menu.UseSTUN = true

	h.menu.STUNClicked = true
	h.step()
	assert.False(t, h.menu.UseSTUN)
	assert.False(t, h.menu.STUNClicked)

	h.step(cfg.KeyTab)
	assert.True(t, h.menu.UseSTUN)

	// Held Tab is a single toggle
	h.step(cfg.KeyTab)
	assert.True(t, h.menu.UseSTUN)

	h.step()
	h.step(cfg.KeyTab)
	h.step(cfg.KeyV)
	h.menu.ConnectClicked = true
	res := h.step()
	assert.Equal(t, components.MatchmakerGame{Stun: false, Input: components.KeyboardLeftScheme()}, res)
}

func TestUpdateMenu_ToggleIgnoredOnLocalTab(t *testing.T) {
	h := newMenuHarness()
	h.menu.UseSTUN = true

	h.step(cfg.KeyTab)
	assert.True(t, h.menu.UseSTUN)
}

func TestPlayerStatus(t *testing.T) {
	players := &components.PlayerListData{Players: []components.InputScheme{components.GamepadScheme(2)}}

	assert.Equal(t, "Connected! (Gamepad(2))", PlayerStatus(players, 0))
	assert.Equal(t, "Not connected", PlayerStatus(players, 1))
}
