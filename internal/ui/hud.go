//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"wildfire/internal/sims/wildfire"
)

// HUD renders the information panel to the right of the grid.
type HUD struct {
	world      *wildfire.World
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []Line
}

// NewHUD constructs a HUD for the provided world and panel width.
func NewHUD(w *wildfire.World, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{world: w, width: width}
}

// Update refreshes the panel text from the world.
func (h *HUD) Update(status wildfire.Status) {
	if h == nil {
		return
	}
	h.lines = PanelLines(h.world.Parameters(), h.world.Counters(), status)
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.world.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	vector.StrokeLine(h.panel, 0.5, 0, 0.5, float32(height), 1, color.RGBA{R: 60, G: 60, B: 70, A: 255}, false)
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + lineBaseline
	for _, l := range h.lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		switch {
		case l.Header:
			y += sectionGap
			col = color.RGBA{R: 255, G: 170, B: 60, A: 255}
		case l.Dim:
			col = color.RGBA{R: 140, G: 140, B: 150, A: 255}
		}
		text.Draw(h.panel, l.Text, face, panelPadding, y, col)
		y += lineHeight
	}
}

const (
	panelPadding = 12
	lineHeight   = 16
	lineBaseline = 4
	sectionGap   = 6
)
