package wildfire

import "image/color"

var wildfirePalette = buildPalette()

// Palette exposes the color palette used for rendering the wildfire world.
// It is indexed by Cell value; every fire state shares one color.
func (w *World) Palette() []color.RGBA {
	return wildfirePalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, int(Ash)+1)
	for i := range palette {
		palette[i] = paletteColorFor(Cell(i))
	}
	return palette
}

func paletteColorFor(c Cell) color.RGBA {
	switch {
	case c == Tree:
		return color.RGBA{R: 40, G: 120, B: 55, A: 255}
	case c.OnFire():
		return color.RGBA{R: 255, G: 130, B: 40, A: 255}
	case c == Ash:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	default:
		return color.RGBA{R: 70, G: 52, B: 32, A: 255}
	}
}
