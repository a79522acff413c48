package scenes

import (
	"log"
	"sync"

	"github.com/automoto/doomerang-duel/archetypes"
	"github.com/automoto/doomerang-duel/assets"
	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/automoto/doomerang-duel/systems/factory"
	"github.com/automoto/doomerang-duel/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSelectScene shows the level grid for an agreed game configuration
type LevelSelectScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	game         components.GameType
	input        EbitenInput
	next         func()
	once         sync.Once
}

// NewLevelSelectScene creates the level grid scene for game
func NewLevelSelectScene(sc SceneChanger, game components.GameType) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, game: game}
}

func (ls *LevelSelectScene) Update() {
	ls.once.Do(ls.configure)

	if ls.next == nil {
		ls.input.Refresh()
		ls.ecs.Update()
	}
	if ls.next != nil {
		ls.next()
	}
}

func (ls *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.LevelSelect.BackgroundColor)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelSelectScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())

	levels, err := assets.LoadLevels()
	if err != nil || len(levels) == 0 {
		log.Printf("[levels] no levels to choose from: %v", err)
		ls.onBack()
		return
	}

	factory.CreateLevelSelect(ls.ecs, levels, systems.LoadPreferences().LastLevel, cfg.C.Width, cfg.C.Height)

	ls.ecs.AddSystem(systems.NewUpdateInput(&ls.input))
	ls.ecs.AddSystem(systems.NewUpdateLevelSelect(ls.onSelect, ls.onBack))
	ls.ecs.AddRenderer(archetypes.LayerDefault, ui.DrawLevelSelect)
}

func (ls *LevelSelectScene) onSelect(mapID string) {
	systems.UpdatePreferences(func(p *systems.Preferences) {
		p.LastLevel = mapID
	})
	ls.next = func() {
		ls.sceneChanger.StartGame(ls.game, mapID)
	}
}

// onBack drops the game configuration and returns to the main menu
func (ls *LevelSelectScene) onBack() {
	releaseGame(ls.game)
	ls.next = func() {
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.sceneChanger))
	}
}
