//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws engine readouts over the top-left corner of the board.
type HUD struct {
	src     parameterProvider
	visible bool
	lines   []string
	panel   *ebiten.Image
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider, visible bool) *HUD {
	return &HUD{src: src, visible: visible}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached lines from the provider.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	h.lines = hudLines(h.src.Parameters())
}

// Draw renders the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	w, ht := panelSize(h.lines)
	if h.panel == nil || h.panel.Bounds().Dx() != w || h.panel.Bounds().Dy() != ht {
		h.panel = ebiten.NewImage(w, ht)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}
