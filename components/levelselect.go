package components

import (
	"image/color"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelEntry is one selectable level card
type LevelEntry struct {
	Map    string // Identifier handed to the game
	Name   string
	Accent color.RGBA
	Size   float64 // Hover animation, 0 (idle) to 1 (fully grown)
}

// LevelSelectData stores the level grid navigation state
type LevelSelectData struct {
	Levels  []LevelEntry
	Hovered int
	Columns int

	// Hit-test objects for the cards, index-aligned with Levels
	Space *resolv.Space
	Cards []*resolv.Object

	Selected string // Map of the confirmed level, empty until chosen
	Back     bool
}

var LevelSelect = donburi.NewComponentType[LevelSelectData]()
