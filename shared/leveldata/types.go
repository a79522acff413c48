// Package leveldata provides TMX level discovery for the level select screen.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import "image/color"

// LevelInfo is what the level select screen needs to know about one map
type LevelInfo struct {
	Map    string // Stem of the .tmx file, handed to the game as the level identifier
	Name   string // "name" map property, falls back to Map
	Order  int    // "order" map property, lower sorts first
	Accent color.RGBA
	Width  int // Pixels
	Height int // Pixels
}

// DefaultAccent is used when a map has no background color
var DefaultAccent = color.RGBA{R: 60, G: 100, B: 160, A: 255}
