package ui

import (
	"image/color"
	"testing"
)

func TestFillMaskRGBA(t *testing.T) {
	buf := []byte{9, 9, 9, 9, 0, 0, 0, 0, 0, 0, 0, 0}
	FillMaskRGBA(buf, []float32{0, 1, 2}, color.RGBA{R: 200, G: 100, B: 0})

	if buf[0] != 0 || buf[3] != 0 {
		t.Fatalf("zero intensity must clear the pixel, got %v", buf[:4])
	}
	full := buf[4:8]
	if full[0] != 200 || full[1] != 100 || full[2] != 0 || full[3] != 140 {
		t.Fatalf("full intensity pixel = %v", full)
	}
	for i := 0; i < 4; i++ {
		if buf[8+i] != full[i] {
			t.Fatalf("intensity above 1 should clamp, got %v want %v", buf[8:12], full)
		}
	}
}

func TestFillMaskRGBAPartialIsDimmer(t *testing.T) {
	buf := make([]byte, 8)
	FillMaskRGBA(buf, []float32{0.25, 1}, color.RGBA{R: 255, G: 255, B: 255})
	if buf[3] >= buf[7] || buf[0] >= buf[4] {
		t.Fatalf("quarter intensity should be dimmer: %v", buf)
	}
}
