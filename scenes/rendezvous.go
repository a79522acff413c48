package scenes

import (
	"context"
	"sync"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/network"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RendezvousScene exchanges addresses with the opponent
type RendezvousScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	request      components.MatchmakerGame
	input        EbitenInput
	rendezvous   *network.Rendezvous
	ctx          context.Context
	cancel       context.CancelFunc
	rendezvousUI *ui.RendezvousUI
	next         func()
	once         sync.Once
}

// NewRendezvousScene creates the address exchange scene for a network game request
func NewRendezvousScene(sc SceneChanger, request components.MatchmakerGame) *RendezvousScene {
	return &RendezvousScene{sceneChanger: sc, request: request}
}

func (rs *RendezvousScene) Update() {
	rs.once.Do(rs.configure)

	rs.input.Refresh()
	rs.rendezvousUI.Update()
	rs.ecs.Update()
	rs.rendezvousUI.Refresh()

	if rs.next != nil {
		rs.next()
	}
}

func (rs *RendezvousScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if rs.rendezvousUI == nil {
		return
	}
	rs.rendezvousUI.Draw(screen)
}

func (rs *RendezvousScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	rs.ctx, rs.cancel = context.WithCancel(context.Background())

	data := systems.GetOrCreateRendezvous(rs.ecs)
	data.UseSTUN = rs.request.Stun
	data.Input = rs.request.Input
	data.PeerAddress = systems.LoadPreferences().LastPeerAddress

	rs.rendezvous = network.NewRendezvous(network.OptionsFromConfig())
	rs.rendezvous.Start(rs.ctx, rs.request.Stun)

	rs.ecs.AddSystem(systems.NewUpdateInput(&rs.input))
	rs.ecs.AddSystem(systems.NewUpdateRendezvous(rs.rendezvous, rs.onRetry, rs.onSession, rs.onBack))

	rs.rendezvousUI = ui.NewRendezvousUI(rs.ecs)
}

func (rs *RendezvousScene) onRetry(useSTUN bool) {
	systems.UpdatePreferences(func(p *systems.Preferences) {
		p.UseSTUN = useSTUN
	})
	rs.rendezvous.Start(rs.ctx, useSTUN)
}

func (rs *RendezvousScene) onSession(session *components.NetworkSession) {
	// The socket now belongs to the session
	rs.cancel()
	systems.UpdatePreferences(func(p *systems.Preferences) {
		p.LastPeerAddress = session.PeerAddress
	})
	rs.next = func() {
		rs.sceneChanger.ChangeScene(NewLevelSelectScene(rs.sceneChanger, session))
	}
}

func (rs *RendezvousScene) onBack() {
	rs.cancel()
	rs.rendezvous.Close()
	rs.next = func() {
		rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger))
	}
}
