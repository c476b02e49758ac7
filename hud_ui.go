package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	energyBarX      = 20
	energyBarY      = 52
	energyBarWidth  = 160
	energyBarHeight = 10
)

var (
	hudTextColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	energyTrackColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x2a, A: 0xc0}
	energyFillColor  = color.NRGBA{R: 0xff, G: 0xb3, B: 0x3b, A: 0xff}
	energyLowColor   = color.NRGBA{R: 0x8a, G: 0x5a, B: 0x2a, A: 0xff}
)

// HUD shows health, coins and torch energy. The system package pushes values
// into it through system.HUDSink.
type HUD struct {
	ui     *ebitenui.UI
	health *widget.Text
	coins  *widget.Text
	energy float64
}

func NewHUD() *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	health := widget.NewText(widget.TextOpts.Text("", &face, hudTextColor))
	coins := widget.NewText(widget.TextOpts.Text("", &face, hudTextColor))

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(health)
	panel.AddChild(coins)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &HUD{
		ui:     &ebitenui.UI{Container: root},
		health: health,
		coins:  coins,
	}
}

func (h *HUD) SetHealth(current, max int) {
	h.health.Label = fmt.Sprintf("Health %d/%d", current, max)
}

func (h *HUD) SetCoins(coins int) {
	h.coins.Label = fmt.Sprintf("Coins %d", coins)
}

func (h *HUD) SetTorchEnergy(fraction float64) {
	h.energy = min(1, max(0, fraction))
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)

	vector.FillRect(screen, energyBarX, energyBarY, energyBarWidth, energyBarHeight, energyTrackColor, false)
	fill := energyFillColor
	if h.energy < 1.0/3.0 {
		fill = energyLowColor
	}
	if w := float32(h.energy * energyBarWidth); w > 0 {
		vector.FillRect(screen, energyBarX, energyBarY, w, energyBarHeight, fill, false)
	}
}
