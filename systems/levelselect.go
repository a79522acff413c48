package systems

import (
	"log"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

const hitCellSize = 4

// Rect is an axis-aligned rectangle in logical screen pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r (right and bottom edges excluded)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Navigate applies one frame of directional input to the hovered index of a
// grid with count items laid out in rows of columns. Directions are applied in
// the order up, down, left, right. Up from the first row lands on the same
// column of the last row that has one; down from the last row returns to the
// first row. Left and right move linearly and may cross rows. The result is
// always in [0, count); count <= 0 yields 0.
func Navigate(hovered, count, columns int, up, down, left, right bool) int {
	if count <= 0 || columns <= 0 {
		return 0
	}

	if up {
		hovered -= columns
		if hovered < 0 {
			padded := (count + columns - 1) / columns * columns
			hovered = (hovered + padded) % padded
			// Landed on a padding slot of a short last row
			if hovered >= count {
				hovered -= columns
			}
		}
	}
	if down {
		hovered += columns
		if hovered >= count {
			hovered %= columns
		}
	}
	if left {
		hovered--
	}
	if right {
		hovered++
	}

	return (hovered%count + count) % count
}

// CardRect returns the on-screen rectangle of card n out of count, grown by
// its hover animation size.
func CardRect(n, count int, size, screenW, screenH float64) Rect {
	c := cfg.LevelSelect
	rows := (count + c.Columns - 1) / c.Columns
	if rows < 1 {
		rows = 1
	}
	w := (screenW-c.ReserveX)/float64(c.Columns) - c.Gap
	h := (screenH-c.ReserveY)/float64(rows) - c.Gap
	col := float64(n % c.Columns)
	row := float64(n / c.Columns)

	return Rect{
		X: c.MarginX + col*(w+c.Gap) - size*c.GrowOffset,
		Y: c.MarginTop + row*(h+c.Gap) - size*c.GrowOffset,
		W: w + size*2*c.GrowOffset,
		H: h + size*2*c.GrowOffset,
	}
}

// NewLevelSelectData builds the grid state for levels. The card whose map
// equals preferred starts hovered.
func NewLevelSelectData(levels []components.LevelEntry, preferred string, screenW, screenH int) components.LevelSelectData {
	data := components.LevelSelectData{
		Levels:  levels,
		Columns: cfg.LevelSelect.Columns,
		Space:   resolv.NewSpace(screenW, screenH, hitCellSize, hitCellSize),
	}
	for i, lvl := range levels {
		if lvl.Map == preferred {
			data.Hovered = i
		}
		r := CardRect(i, len(levels), lvl.Size, float64(screenW), float64(screenH))
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvLevelCard)
		obj.Data = i
		data.Cards = append(data.Cards, obj)
		data.Space.Add(obj)
	}
	return data
}

// NewUpdateLevelSelect creates the level grid system. onSelect receives the
// chosen map identifier once; onBack is called if the player backs out.
func NewUpdateLevelSelect(onSelect func(mapID string), onBack func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.LevelSelect.First(e.World)
		if !ok {
			return
		}
		data := components.LevelSelect.Get(entry)
		if data.Selected != "" || data.Back {
			return
		}

		UpdateLevelSelect(data, GetOrCreateInput(e), float64(cfg.C.Width), float64(cfg.C.Height))
		switch {
		case data.Back:
			if onBack != nil {
				onBack()
			}
		case data.Selected != "":
			log.Printf("[levels] selected %s", data.Selected)
			if onSelect != nil {
				onSelect(data.Selected)
			}
		}
	}
}

// UpdateLevelSelect runs one frame of the level grid: directional input, then
// pointer hover (which wins), then the hover animation, then confirmation.
func UpdateLevelSelect(data *components.LevelSelectData, input *components.InputData, screenW, screenH float64) {
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		data.Back = true
		return
	}
	count := len(data.Levels)
	if count == 0 {
		return
	}

	data.Hovered = Navigate(data.Hovered, count, data.Columns,
		GetAction(input, cfg.ActionMenuUp).JustPressed,
		GetAction(input, cfg.ActionMenuDown).JustPressed,
		GetAction(input, cfg.ActionMenuLeft).JustPressed,
		GetAction(input, cfg.ActionMenuRight).JustPressed,
	)

	syncCards(data, screenW, screenH)

	pointed := -1
	moved := input.MouseMoved()
	clicked := input.MouseJustClicked()
	if moved || clicked {
		pointed = cardAt(data, input.Cursor, screenW, screenH)
	}
	if moved && pointed >= 0 {
		data.Hovered = pointed
	}

	hover := cfg.LevelSelect.HoverEase
	for i := range data.Levels {
		lvl := &data.Levels[i]
		if i == data.Hovered {
			lvl.Size = lvl.Size*hover + (1 - hover)
		} else {
			lvl.Size *= cfg.LevelSelect.DecayEase
		}
	}

	if clicked && pointed >= 0 {
		data.Selected = data.Levels[pointed].Map
		return
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed || GetAction(input, cfg.ActionMenuStart).JustPressed {
		data.Selected = data.Levels[data.Hovered].Map
	}
}

// syncCards moves the hit-test objects to the cards' current rectangles
func syncCards(data *components.LevelSelectData, screenW, screenH float64) {
	for i, obj := range data.Cards {
		if i >= len(data.Levels) {
			break
		}
		r := CardRect(i, len(data.Levels), data.Levels[i].Size, screenW, screenH)
		obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
		obj.Update()
	}
}

// cardAt returns the index of the card under the cursor, or -1. The space
// narrows the candidates to cards sharing the cursor's cell; the exact
// rectangle decides. Later cards win, matching draw order.
func cardAt(data *components.LevelSelectData, cur components.Cursor, screenW, screenH float64) int {
	if data.Space == nil {
		return -1
	}
	probe := resolv.NewObject(float64(cur.X), float64(cur.Y), 1, 1, tags.ResolvCursor)
	data.Space.Add(probe)
	defer data.Space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvLevelCard)
	if check == nil {
		return -1
	}

	found := -1
	for _, obj := range check.ObjectsByTags(tags.ResolvLevelCard) {
		i, ok := obj.Data.(int)
		if !ok || i >= len(data.Levels) {
			continue
		}
		r := CardRect(i, len(data.Levels), data.Levels[i].Size, screenW, screenH)
		if r.Contains(float64(cur.X), float64(cur.Y)) && i > found {
			found = i
		}
	}
	return found
}
