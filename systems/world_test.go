package systems

import (
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frame holds keys for one ecs update
func frame(e *ecs.ECS, src *fakeSource, keys ...cfg.Key) {
	for _, k := range keys {
		src.keys[k] = true
	}
	e.Update()
	for _, k := range keys {
		src.keys[k] = false
	}
}

func TestGetOrCreate_Singletons(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	assert.Same(t, GetOrCreateInput(e), GetOrCreateInput(e))
	assert.Same(t, GetOrCreatePlayerList(e), GetOrCreatePlayerList(e))
	assert.Same(t, GetOrCreateRendezvous(e), GetOrCreateRendezvous(e))

	menu := GetOrCreateMenu(e)
	assert.Same(t, menu, GetOrCreateMenu(e))
	assert.Equal(t, components.TabLocal, menu.Tab)
	assert.Equal(t, cfg.Network.UseSTUN, menu.UseSTUN)
}

func TestMenuWorld_LocalGameReportedOnce(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	src := newFakeSource()
	var results []components.MenuResult

	e.AddSystem(NewUpdateInput(src))
	e.AddSystem(UpdatePlayerBinding)
	e.AddSystem(NewUpdateMenu(func(r components.MenuResult) {
		results = append(results, r)
	}))

	frame(e, src)
	frame(e, src, cfg.KeyV)
	frame(e, src, cfg.KeyL)
	frame(e, src, cfg.KeyEnter)
	frame(e, src, cfg.KeyEnter)
	frame(e, src)
	frame(e, src, cfg.KeyEnter)

	require.Len(t, results, 1)
	assert.Equal(t, components.DirectGame{Game: components.LocalGame{Players: []components.InputScheme{
		components.KeyboardLeftScheme(),
		components.KeyboardRightScheme(),
	}}}, results[0])
	assert.NotNil(t, GetOrCreateMenu(e).Result)
}

func TestRendezvousWorld_Callbacks(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	src := newFakeSource()
	peer := &fakePeer{state: network.StateReady, local: "198.51.100.4:50000"}

	var sessions []*components.NetworkSession
	var retries []bool
	e.AddSystem(NewUpdateInput(src))
	e.AddSystem(NewUpdateRendezvous(peer,
		func(useSTUN bool) { retries = append(retries, useSTUN) },
		func(s *components.NetworkSession) { sessions = append(sessions, s) },
		func() { t.Fatal("unexpected back") },
	))

	data := GetOrCreateRendezvous(e)
	data.UseSTUN = true

	frame(e, src)
	frame(e, src, cfg.KeyTab)
	assert.Equal(t, []bool{false}, retries)
	assert.Empty(t, data.LocalAddress)

	frame(e, src)
	data.PeerAddress = "203.0.113.9:41000"
	frame(e, src, cfg.KeyEnter)
	frame(e, src)
	frame(e, src, cfg.KeyEnter)

	require.Len(t, sessions, 1)
	assert.Equal(t, "203.0.113.9:41000", sessions[0].PeerAddress)
	assert.Len(t, peer.calls, 1)
}
