package components

import "github.com/yohamta/donburi"

// MenuTab is the selected tab of the main menu
type MenuTab int

const (
	TabLocal MenuTab = iota
	TabNetwork
	TabCount
)

// MainMenuData stores the state of the main menu window.
// The *Clicked fields are set by the UI and consumed by the menu system.
type MainMenuData struct {
	Tab     MenuTab
	UseSTUN bool

	ReadyClicked   bool
	ConnectClicked bool
	STUNClicked    bool
	TabClicked     *MenuTab

	Result MenuResult
}

var MainMenu = donburi.NewComponentType[MainMenuData]()
