package main

import (
	"errors"
	"image"
	"log"

	"github.com/automoto/doomerang-duel/assets"
	"github.com/automoto/doomerang-duel/components"
	"github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/scenes"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	done   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// StartGame receives the configuration the menus agreed on. Running the match
// itself is up to the game binary, so the menu flow ends here.
func (g *Game) StartGame(game components.GameType, level string) {
	switch gt := game.(type) {
	case components.LocalGame:
		log.Printf("starting local game on %s with %v", level, gt.Players)
	case *components.NetworkSession:
		log.Printf("starting network game %s on %s: local=%s peer=%s id=%d input=%s",
			gt.ID, level, gt.LocalAddress, gt.PeerAddress, gt.PeerID, gt.Input)
		if gt.Conn != nil {
			_ = gt.Conn.Close()
		}
	}
	g.done = true
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewLevelSelectScene(g, components.LocalGame{
			Players: []components.InputScheme{
				components.KeyboardLeftScheme(),
				components.KeyboardRightScheme(),
			},
		})
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.LoadEnv(".env"); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Level select cannot work without at least one level
	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if len(levels) == 0 {
		log.Fatal(errors.New("no levels found"))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
