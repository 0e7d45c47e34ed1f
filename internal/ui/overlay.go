//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type maskProvider interface {
	ExposureMask() []float32
	FrontMask() []float32
}

// Overlay tints the grid with fire pressure on living trees.
type Overlay struct {
	sim          maskProvider
	w, h         int
	scale        int
	showExposure bool
	showFront    bool
	maskImg      *ebiten.Image
	maskBuf      []byte
}

// NewOverlay constructs an overlay for a square grid of side size.
func NewOverlay(sim maskProvider, size, scale int) *Overlay {
	return &Overlay{sim: sim, w: size, h: size, scale: scale}
}

// Update toggles the layers: 1 exposure, 2 ignition front.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showExposure = !o.showExposure
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showFront = !o.showFront
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	total := o.w * o.h
	if total == 0 {
		return
	}
	if o.maskImg == nil {
		o.maskImg = ebiten.NewImage(o.w, o.h)
		o.maskBuf = make([]byte, 4*total)
	}
	if o.showExposure {
		o.drawMask(screen, o.sim.ExposureMask(), color.RGBA{R: 255, G: 120, B: 40})
	}
	if o.showFront {
		o.drawMask(screen, o.sim.FrontMask(), color.RGBA{R: 255, G: 230, B: 60})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if len(mask) != o.w*o.h {
		return
	}
	FillMaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
