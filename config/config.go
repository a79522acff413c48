package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// MenuConfig contains main menu and rendezvous window configuration values
type MenuConfig struct {
	WindowWidth       int
	WindowHeight      int
	BackgroundColor   color.RGBA
	WindowColor       color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDim      color.RGBA
	StatusColor       color.RGBA
	ErrorColor        color.RGBA
	TabLabels         [2]string
}

// LevelSelectConfig contains the level grid layout and hover animation values
type LevelSelectConfig struct {
	Columns    int
	MarginX    float64 // Left edge of the first column
	MarginTop  float64 // Top edge of the first row
	ReserveX   float64 // Horizontal space not available to cards
	ReserveY   float64 // Vertical space not available to cards
	Gap        float64 // Space between cards
	GrowOffset float64 // Pixels a fully hovered card grows on each side
	HoverEase  float64 // size = size*HoverEase + (1-HoverEase) while hovered
	DecayEase  float64 // size = size*DecayEase otherwise
	LevelsDir  string

	BackgroundColor color.RGBA
	CardColor       color.RGBA
	BorderColor     color.RGBA
	HoverColor      color.RGBA
	TitleColor      color.RGBA
}

// NetworkConfig contains rendezvous settings
type NetworkConfig struct {
	BindAddress string        // Local UDP endpoint, port 0 picks any free port
	STUNServer  string        // host:port of the STUN service
	STUNTimeout time.Duration // Upper bound for bind + STUN query
	UseSTUN     bool          // Default for the "Use STUN server" toggle
}

// PersistenceConfig contains the on-disk preference storage settings
type PersistenceConfig struct {
	AppName string
	ItemKey string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Go directly to level select with a keyboard-only local game
}

// Global configuration instances
var C *Config
var Menu MenuConfig
var LevelSelect LevelSelectConfig
var Network NetworkConfig
var Persistence PersistenceConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Doomerang Duel",
	}

	Menu = MenuConfig{
		WindowWidth:       700,
		WindowHeight:      400,
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		WindowColor:       color.RGBA{R: 30, G: 30, B: 45, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDim:      Grey,
		StatusColor:       color.RGBA{R: 255, G: 200, B: 100, A: 255},
		ErrorColor:        LightRed,
		TabLabels:         [2]string{"<< Local game, LB", "Network game, RB >>"},
	}

	LevelSelect = LevelSelectConfig{
		Columns:    3,
		MarginX:    60,
		MarginTop:  115,
		ReserveX:   120,
		ReserveY:   180,
		Gap:        50,
		GrowOffset: 30,
		HoverEase:  0.8,
		DecayEase:  0.9,
		LevelsDir:  "levels",

		BackgroundColor: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		CardColor:       color.RGBA{R: 40, G: 40, B: 55, A: 255},
		BorderColor:     DarkBlue,
		HoverColor:      LightBlue,
		TitleColor:      Orange,
	}

	Network = NetworkConfig{
		BindAddress: "0.0.0.0:0",
		STUNServer:  "stun.l.google.com:19302",
		STUNTimeout: 5 * time.Second,
		UseSTUN:     true,
	}

	Persistence = PersistenceConfig{
		AppName: "doomerang-duel",
		ItemKey: "preferences",
	}
}
