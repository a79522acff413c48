package ui

import (
	"image/color"

	"github.com/automoto/doomerang-duel/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	toastSeconds = 1.5
	toastHeight  = 22
)

// Toast is a short message at the bottom of the screen that fades out
type Toast struct {
	msg   string
	fade  *gween.Tween
	alpha float32
}

// Show replaces the current message and restarts the fade
func (t *Toast) Show(msg string) {
	t.msg = msg
	t.alpha = 1
	t.fade = gween.New(1, 0, toastSeconds, ease.InQuad)
}

// Update advances the fade by one tick
func (t *Toast) Update() {
	if t.fade == nil {
		return
	}
	a, done := t.fade.Update(1 / float32(ebiten.TPS()))
	t.alpha = a
	if done {
		t.fade = nil
		t.alpha = 0
	}
}

func (t *Toast) Draw(screen *ebiten.Image) {
	if t.alpha <= 0 || t.msg == "" {
		return
	}
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	a := uint8(255 * t.alpha)

	vector.FillRect(screen, 0, h-toastHeight, w, toastHeight, color.RGBA{0, 0, 0, uint8(200 * t.alpha)}, false)
	text.Draw(screen, t.msg, fonts.Small.Get(), 8, int(h)-8, color.RGBA{a, a, a, a})
}
