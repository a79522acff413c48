package scenes

import (
	"sync"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu window
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	input        EbitenInput
	menuUI       *ui.MainMenuUI
	next         func()
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.input.Refresh()
	ms.menuUI.Update()
	ms.ecs.Update()
	ms.menuUI.Refresh()

	// Scene changes wait until the frame is done with this world
	if ms.next != nil {
		ms.next()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	prefs := systems.LoadPreferences()
	systems.GetOrCreateMenu(ms.ecs).UseSTUN = prefs.UseSTUN
	systems.GetOrCreatePlayerList(ms.ecs)

	ms.ecs.AddSystem(systems.NewUpdateInput(&ms.input))
	ms.ecs.AddSystem(systems.UpdatePlayerBinding)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.onResult))

	ms.menuUI = ui.NewMainMenuUI(ms.ecs)
}

func (ms *MenuScene) onResult(res components.MenuResult) {
	switch r := res.(type) {
	case components.DirectGame:
		ms.next = func() {
			ms.sceneChanger.ChangeScene(NewLevelSelectScene(ms.sceneChanger, r.Game))
		}
	case components.MatchmakerGame:
		systems.UpdatePreferences(func(p *systems.Preferences) {
			p.UseSTUN = r.Stun
		})
		ms.next = func() {
			ms.sceneChanger.ChangeScene(NewRendezvousScene(ms.sceneChanger, r))
		}
	}
}
