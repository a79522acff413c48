package systems

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testScreenW = 960
	testScreenH = 540
)

func testLevels(n int) []components.LevelEntry {
	levels := make([]components.LevelEntry, n)
	for i := range levels {
		levels[i] = components.LevelEntry{Map: fmt.Sprintf("map%d", i), Name: fmt.Sprintf("Level %d", i)}
	}
	return levels
}

func TestNavigate_StaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for count := 1; count <= 13; count++ {
		hovered := 0
		for i := 0; i < 500; i++ {
			hovered = Navigate(hovered, count, 3,
				rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0, rng.Intn(3) == 0)
			require.GreaterOrEqual(t, hovered, 0, "count %d", count)
			require.Less(t, hovered, count, "count %d", count)
		}
	}
}

func TestNavigate_UpDownInverseOnFullGrid(t *testing.T) {
	for _, count := range []int{3, 6, 9, 12} {
		for h := 0; h < count; h++ {
			up := Navigate(h, count, 3, true, false, false, false)
			assert.Equal(t, h, Navigate(up, count, 3, false, true, false, false), "count %d from %d", count, h)
			down := Navigate(h, count, 3, false, true, false, false)
			assert.Equal(t, h, Navigate(down, count, 3, true, false, false, false), "count %d from %d", count, h)
		}
	}
}

func TestNavigate_Cases(t *testing.T) {
	tests := []struct {
		name                  string
		hovered, count        int
		up, down, left, right bool
		want                  int
	}{
		{name: "down from short last row", hovered: 6, count: 7, down: true, want: 0},
		{name: "down into short last row", hovered: 3, count: 7, down: true, want: 6},
		{name: "down past short last row", hovered: 4, count: 7, down: true, want: 1},
		{name: "up wraps to last row", hovered: 0, count: 7, up: true, want: 6},
		{name: "up wraps over padding", hovered: 1, count: 7, up: true, want: 4},
		{name: "up wraps over padding col 2", hovered: 2, count: 7, up: true, want: 5},
		{name: "up inside grid", hovered: 4, count: 7, up: true, want: 1},
		{name: "left wraps to end", hovered: 0, count: 5, left: true, want: 4},
		{name: "right wraps to start", hovered: 4, count: 5, right: true, want: 0},
		{name: "right crosses rows", hovered: 2, count: 5, right: true, want: 3},
		{name: "left and right cancel", hovered: 1, count: 5, left: true, right: true, want: 1},
		{name: "single level", hovered: 0, count: 1, up: true, right: true, want: 0},
		{name: "no levels", hovered: 3, count: 0, down: true, want: 0},
		{name: "out of range input", hovered: 11, count: 5, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Navigate(tt.hovered, tt.count, 3, tt.up, tt.down, tt.left, tt.right)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardRect_Layout(t *testing.T) {
	r := CardRect(0, 5, 0, testScreenW, testScreenH)
	assert.Equal(t, Rect{X: 60, Y: 115, W: 230, H: 130}, r)

	r = CardRect(4, 5, 0, testScreenW, testScreenH)
	assert.Equal(t, Rect{X: 340, Y: 295, W: 230, H: 130}, r)

	grown := CardRect(4, 5, 1, testScreenW, testScreenH)
	assert.Equal(t, Rect{X: 310, Y: 265, W: 290, H: 190}, grown)
}

func TestNewLevelSelectData_PreferredLevel(t *testing.T) {
	data := NewLevelSelectData(testLevels(5), "map3", testScreenW, testScreenH)
	assert.Equal(t, 3, data.Hovered)
	assert.Len(t, data.Cards, 5)
	assert.Equal(t, cfg.LevelSelect.Columns, data.Columns)

	data = NewLevelSelectData(testLevels(5), "gone", testScreenW, testScreenH)
	assert.Equal(t, 0, data.Hovered)
}

type levelHarness struct {
	src   *fakeSource
	input *components.InputData
	data  *components.LevelSelectData
}

func newLevelHarness(n int) *levelHarness {
	src := newFakeSource()
	data := NewLevelSelectData(testLevels(n), "", testScreenW, testScreenH)
	return &levelHarness{src: src, input: primedInput(src), data: &data}
}

func (h *levelHarness) step(keys ...cfg.Key) {
	for _, k := range keys {
		h.src.keys[k] = true
	}
	PollInput(h.input, h.src)
	UpdateLevelSelect(h.data, h.input, testScreenW, testScreenH)
	for _, k := range keys {
		h.src.keys[k] = false
	}
}

func TestUpdateLevelSelect_KeyboardConfirm(t *testing.T) {
	h := newLevelHarness(5)

	h.step(cfg.KeyDown)
	assert.Equal(t, 3, h.data.Hovered)
	h.step(cfg.KeyRight)
	assert.Equal(t, 4, h.data.Hovered)
	assert.Empty(t, h.data.Selected)

	h.step(cfg.KeyEnter)
	assert.Equal(t, "map4", h.data.Selected)
}

func TestUpdateLevelSelect_GamepadStartConfirms(t *testing.T) {
	h := newLevelHarness(5)
	h.src.connect(0)
	h.step()

	h.src.press(0, cfg.ButtonStart, true)
	h.step()
	assert.Equal(t, "map0", h.data.Selected)
}

func TestUpdateLevelSelect_PointerWinsOverKeys(t *testing.T) {
	h := newLevelHarness(5)

	// Centre of card 4
	h.src.x, h.src.y = 455, 360
	h.step(cfg.KeyRight)
	assert.Equal(t, 4, h.data.Hovered)

	// A still cursor does not take the hover back
	h.step(cfg.KeyLeft)
	assert.Equal(t, 3, h.data.Hovered)
}

func TestUpdateLevelSelect_PointerOutsideCards(t *testing.T) {
	h := newLevelHarness(5)
	h.step(cfg.KeyRight)
	require.Equal(t, 1, h.data.Hovered)

	h.src.x, h.src.y = 5, 5
	h.step()
	assert.Equal(t, 1, h.data.Hovered)

	h.src.mouse = true
	h.step()
	assert.Empty(t, h.data.Selected)
}

func TestUpdateLevelSelect_ClickSelectsPointedCard(t *testing.T) {
	h := newLevelHarness(5)
	h.src.x, h.src.y = 100, 150
	h.step()
	require.Equal(t, 0, h.data.Hovered)

	h.src.mouse = true
	h.step()
	assert.Equal(t, "map0", h.data.Selected)
}

func TestUpdateLevelSelect_HoverEasing(t *testing.T) {
	h := newLevelHarness(3)

	h.step()
	assert.InDelta(t, 1-cfg.LevelSelect.HoverEase, h.data.Levels[0].Size, 1e-9)
	assert.Zero(t, h.data.Levels[1].Size)

	for i := 0; i < 60; i++ {
		h.step()
	}
	assert.InDelta(t, 1, h.data.Levels[0].Size, 1e-3)

	h.step(cfg.KeyRight)
	grown := h.data.Levels[0].Size
	h.step()
	assert.Less(t, h.data.Levels[0].Size, grown)
	assert.Greater(t, h.data.Levels[1].Size, 0.0)
}

func TestUpdateLevelSelect_Back(t *testing.T) {
	h := newLevelHarness(5)
	h.step(cfg.KeyEscape)
	assert.True(t, h.data.Back)
	assert.Empty(t, h.data.Selected)
}
