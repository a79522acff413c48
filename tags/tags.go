package tags

import "github.com/yohamta/donburi"

var (
	Input       = donburi.NewTag().SetName("Input")
	Menu        = donburi.NewTag().SetName("Menu")
	PlayerList  = donburi.NewTag().SetName("PlayerList")
	Rendezvous  = donburi.NewTag().SetName("Rendezvous")
	LevelSelect = donburi.NewTag().SetName("LevelSelect")
)

// Resolv tags for pointer hit testing
const (
	ResolvLevelCard = "levelcard"
	ResolvCursor    = "cursor"
)
