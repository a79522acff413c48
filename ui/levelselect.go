package ui

import (
	"image/color"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/fonts"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevelSelect renders the level grid
func DrawLevelSelect(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.LevelSelect.First(e.World)
	if !ok {
		return
	}
	data := components.LevelSelect.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.LevelSelect.BackgroundColor, false)

	text.Draw(screen, "SELECT LEVEL", fonts.Title.Get(), int(cfg.LevelSelect.MarginX), 60, cfg.LevelSelect.TitleColor)

	nameFont := fonts.Bold.Get()
	for i, lvl := range data.Levels {
		r := systems.CardRect(i, len(data.Levels), lvl.Size, width, height)
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)

		vector.FillRect(screen, x, y, w, h, cfg.LevelSelect.CardColor, false)
		// Accent band grows with the hover animation
		band := h * float32(0.25+0.5*lvl.Size)
		vector.FillRect(screen, x, y, w, band, lvl.Accent, false)

		border := cfg.LevelSelect.BorderColor
		if i == data.Hovered {
			border = cfg.LevelSelect.HoverColor
		}
		vector.StrokeRect(screen, x, y, w, h, 2, border, false)

		text.Draw(screen, lvl.Name, nameFont, int(x)+8, int(y+h)-10, nameColor(i == data.Hovered))
	}

	hint := "Arrows / stick to move, Enter / A to play, Esc / B to go back"
	text.Draw(screen, hint, fonts.Small.Get(), int(cfg.LevelSelect.MarginX), int(height)-12, cfg.Menu.TextColorDim)
}

func nameColor(hovered bool) color.Color {
	if hovered {
		return cfg.Menu.TextColorSelected
	}
	return cfg.Menu.TextColorNormal
}
