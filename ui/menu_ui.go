package ui

import (
	"fmt"

	"github.com/automoto/doomerang-duel/components"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/yohamta/donburi/ecs"
)

// MainMenuUI is the two-tab window shown before a game. Clicks are recorded
// on the MainMenu component and resolved by the menu system.
type MainMenuUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	tabButtons [components.TabCount]*widget.Button
	panels     [components.TabCount]*widget.Container
	content    *widget.Container
	shownTab   components.MenuTab

	slotLabels [components.MaxPlayers]*widget.Label
	readyBtn   *widget.Button
	stunBtn    *widget.Button
	connectBtn *widget.Button
	inputLabel *widget.Label

	faces faces
}

// NewMainMenuUI builds the main menu window for the menu world e
func NewMainMenuUI(e *ecs.ECS) *MainMenuUI {
	mui := &MainMenuUI{ecs: e, shownTab: -1, faces: loadFaces()}
	mui.buildUI()
	mui.Refresh()
	return mui
}

func (mui *MainMenuUI) buildUI() {
	root, window := centeredWindow(cfg.Menu.BackgroundColor, cfg.Menu.WindowColor,
		cfg.Menu.WindowWidth, cfg.Menu.WindowHeight)

	window.AddChild(newLabel("DOOMERANG DUEL", &mui.faces.title, cfg.Menu.TitleColor))
	window.AddChild(mui.buildTabBar())

	mui.content = newColumn(0, widget.NewInsetsSimple(0))
	window.AddChild(mui.content)

	mui.panels[components.TabLocal] = mui.buildLocalPanel()
	mui.panels[components.TabNetwork] = mui.buildNetworkPanel()

	window.AddChild(newLabel("Left / Right switches tabs", &mui.faces.small, cfg.Menu.TextColorDim))

	mui.UI = &ebitenui.UI{Container: root}
}

func (mui *MainMenuUI) buildTabBar() *widget.Container {
	row := newRow(4)
	for i, label := range cfg.Menu.TabLabels {
		tab := components.MenuTab(i)
		mui.tabButtons[tab] = newButton(label, &mui.faces.normal, tabButtonImage(), 120, 24, func() {
			systems.GetOrCreateMenu(mui.ecs).TabClicked = &tab
		})
		row.AddChild(mui.tabButtons[tab])
	}
	return row
}

func (mui *MainMenuUI) buildLocalPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := newColumn(6, &padding)

	panel.AddChild(newLabel("To connect:", &mui.faces.normal, cfg.Menu.TextColorNormal))
	panel.AddChild(newLabel("Press Start on gamepad", &mui.faces.small, cfg.Menu.TextColorDim))
	panel.AddChild(newLabel("Or V for keyboard 1", &mui.faces.small, cfg.Menu.TextColorDim))
	panel.AddChild(newLabel("Or L for keyboard 2", &mui.faces.small, cfg.Menu.TextColorDim))

	for i := range mui.slotLabels {
		row := newRow(8)
		row.AddChild(newLabel(fmt.Sprintf("Player %d:", i+1), &mui.faces.normal, cfg.Menu.TextColorNormal))
		mui.slotLabels[i] = newLabel("", &mui.faces.normal, cfg.Menu.StatusColor)
		row.AddChild(mui.slotLabels[i])
		panel.AddChild(row)
	}

	mui.readyBtn = newButton("Ready", &mui.faces.normal, confirmButtonImage(), 120, 26, func() {
		systems.GetOrCreateMenu(mui.ecs).ReadyClicked = true
	})
	panel.AddChild(mui.readyBtn)
	return panel
}

func (mui *MainMenuUI) buildNetworkPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := newColumn(6, &padding)

	panel.AddChild(newLabel("Play against someone on another machine.", &mui.faces.normal, cfg.Menu.TextColorNormal))
	panel.AddChild(newLabel("Connect with V, L or Start first, then press Connect.", &mui.faces.small, cfg.Menu.TextColorDim))

	mui.stunBtn = newButton("", &mui.faces.normal, buttonImage(), 180, 24, func() {
		systems.GetOrCreateMenu(mui.ecs).STUNClicked = true
	})
	panel.AddChild(mui.stunBtn)

	mui.inputLabel = newLabel("", &mui.faces.normal, cfg.Menu.StatusColor)
	panel.AddChild(mui.inputLabel)

	mui.connectBtn = newButton("Connect", &mui.faces.normal, confirmButtonImage(), 120, 26, func() {
		systems.GetOrCreateMenu(mui.ecs).ConnectClicked = true
	})
	panel.AddChild(mui.connectBtn)
	return panel
}

// Update processes widget input. Run before the menu systems.
func (mui *MainMenuUI) Update() {
	mui.UI.Update()
}

// Refresh copies the menu state into the widgets. Run after the menu systems.
func (mui *MainMenuUI) Refresh() {
	menu := systems.GetOrCreateMenu(mui.ecs)
	players := systems.GetOrCreatePlayerList(mui.ecs)

	if menu.Tab != mui.shownTab {
		mui.content.RemoveChildren()
		mui.content.AddChild(mui.panels[menu.Tab])
		mui.shownTab = menu.Tab
	}
	for tab, btn := range mui.tabButtons {
		btn.GetWidget().Disabled = components.MenuTab(tab) == menu.Tab
	}

	for i, label := range mui.slotLabels {
		label.Label = systems.PlayerStatus(players, i)
	}
	mui.readyBtn.GetWidget().Disabled = !players.Full()

	stun := "[ ] Use STUN server"
	if menu.UseSTUN {
		stun = "[x] Use STUN server"
	}
	mui.stunBtn.Text().Label = stun

	first, ok := players.Player(0)
	if ok {
		mui.inputLabel.Label = "Input: " + first.String()
	} else {
		mui.inputLabel.Label = "Input: none, connect a player first"
	}
	mui.connectBtn.GetWidget().Disabled = !ok
}
