package ui

import (
	"log"

	"github.com/atotto/clipboard"
	cfg "github.com/automoto/doomerang-duel/config"
	"github.com/automoto/doomerang-duel/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/skip2/go-qrcode"
	"github.com/yohamta/donburi/ecs"
)

const qrSize = 128

// RendezvousUI is the address exchange window. The local address field is
// overwritten from the component every frame, the peer field is the only
// editable one.
type RendezvousUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	localInput  *widget.TextInput
	peerInput   *widget.TextInput
	statusLabel *widget.Label
	errorLabel  *widget.Label
	stunLabel   *widget.Label
	connectBtn  *widget.Button
	retryBtn    *widget.Button
	qr          *widget.Graphic
	qrAddress   string

	toast Toast
	faces faces
}

// NewRendezvousUI builds the address exchange window for the world e
func NewRendezvousUI(e *ecs.ECS) *RendezvousUI {
	rui := &RendezvousUI{ecs: e, faces: loadFaces()}
	rui.buildUI()
	rui.peerInput.SetText(systems.GetOrCreateRendezvous(e).PeerAddress)
	return rui
}

func (rui *RendezvousUI) buildUI() {
	root, window := centeredWindow(cfg.Menu.BackgroundColor, cfg.Menu.WindowColor,
		cfg.Menu.WindowWidth, cfg.Menu.WindowHeight)

	window.AddChild(newLabel("NETWORK GAME", &rui.faces.title, cfg.Menu.TitleColor))

	body := newRow(16)
	form := newColumn(6, widget.NewInsetsSimple(0))

	form.AddChild(newLabel("Your address:", &rui.faces.normal, cfg.Menu.TextColorNormal))
	localRow := newRow(6)
	rui.localInput = newTextInput(&rui.faces.normal, 220, "waiting...")
	localRow.AddChild(rui.localInput)
	localRow.AddChild(newButton("Copy", &rui.faces.small, buttonImage(), 60, 22, rui.copyLocal))
	form.AddChild(localRow)

	form.AddChild(newLabel("Opponent address:", &rui.faces.normal, cfg.Menu.TextColorNormal))
	peerRow := newRow(6)
	rui.peerInput = newTextInput(&rui.faces.normal, 220, "203.0.113.7:40000")
	peerRow.AddChild(rui.peerInput)
	peerRow.AddChild(newButton("Paste", &rui.faces.small, buttonImage(), 60, 22, rui.pastePeer))
	form.AddChild(peerRow)

	rui.stunLabel = newLabel("", &rui.faces.small, cfg.Menu.TextColorDim)
	form.AddChild(rui.stunLabel)

	rui.statusLabel = newLabel("", &rui.faces.small, cfg.Menu.StatusColor)
	form.AddChild(rui.statusLabel)
	rui.errorLabel = newLabel("", &rui.faces.small, cfg.Menu.ErrorColor)
	form.AddChild(rui.errorLabel)

	body.AddChild(form)

	rui.qr = widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(widget.WidgetOpts.MinSize(qrSize, qrSize)),
	)
	body.AddChild(rui.qr)
	window.AddChild(body)

	buttons := newRow(10)
	buttons.AddChild(newButton("Back", &rui.faces.normal, buttonImage(), 80, 28, func() {
		systems.GetOrCreateRendezvous(rui.ecs).BackClicked = true
	}))
	rui.retryBtn = newButton("Retry", &rui.faces.normal, buttonImage(), 80, 28, func() {
		systems.GetOrCreateRendezvous(rui.ecs).RetryClicked = true
	})
	buttons.AddChild(rui.retryBtn)
	rui.connectBtn = newButton("Connect", &rui.faces.normal, confirmButtonImage(), 120, 28, func() {
		systems.GetOrCreateRendezvous(rui.ecs).ConnectClicked = true
	})
	buttons.AddChild(rui.connectBtn)
	window.AddChild(buttons)

	rui.UI = &ebitenui.UI{Container: root}
}

func (rui *RendezvousUI) copyLocal() {
	addr := systems.GetOrCreateRendezvous(rui.ecs).LocalAddress
	if addr == "" {
		return
	}
	if err := clipboard.WriteAll(addr); err != nil {
		log.Printf("[rendezvous] copy failed: %v", err)
		rui.toast.Show("Clipboard unavailable")
		return
	}
	rui.toast.Show("Copied " + addr)
}

func (rui *RendezvousUI) pastePeer() {
	s, err := clipboard.ReadAll()
	if err != nil {
		log.Printf("[rendezvous] paste failed: %v", err)
		rui.toast.Show("Clipboard unavailable")
		return
	}
	rui.peerInput.SetText(s)
}

// Update processes widget input and hands the edited peer address to the
// component. Run before the rendezvous systems.
func (rui *RendezvousUI) Update() {
	rui.UI.Update()
	rui.toast.Update()
	systems.GetOrCreateRendezvous(rui.ecs).PeerAddress = rui.peerInput.GetText()
}

// Refresh copies the component state into the widgets. Run after the rendezvous systems.
func (rui *RendezvousUI) Refresh() {
	data := systems.GetOrCreateRendezvous(rui.ecs)

	rui.localInput.SetText(data.LocalAddress)
	if data.StatusIsErr {
		rui.statusLabel.Label = ""
		rui.errorLabel.Label = data.Status
	} else {
		rui.statusLabel.Label = data.Status
		rui.errorLabel.Label = ""
	}

	if data.UseSTUN {
		rui.stunLabel.Label = "Using STUN server " + cfg.Network.STUNServer + " (Tab to turn off)"
	} else {
		rui.stunLabel.Label = "Local address only (Tab to use STUN)"
	}

	rui.connectBtn.GetWidget().Disabled = data.LocalAddress == ""
	rui.retryBtn.GetWidget().Disabled = !data.StatusIsErr

	if data.LocalAddress != rui.qrAddress {
		rui.qrAddress = data.LocalAddress
		rui.qr.Image = qrImage(data.LocalAddress)
	}
}

func (rui *RendezvousUI) Draw(screen *ebiten.Image) {
	rui.UI.Draw(screen)
	rui.toast.Draw(screen)
}

// qrImage encodes addr for scanning from a phone, nil when there is nothing to show
func qrImage(addr string) *ebiten.Image {
	if addr == "" {
		return nil
	}
	q, err := qrcode.New(addr, qrcode.Medium)
	if err != nil {
		log.Printf("[rendezvous] qr encode failed: %v", err)
		return nil
	}
	return ebiten.NewImageFromImage(q.Image(qrSize))
}
