package app

import "testing"

func TestNormalizedFillsDefaults(t *testing.T) {
	got := Options{HUDWidth: -5, Budget: 7}.normalized()
	d := DefaultOptions()
	if got.Scale != d.Scale || got.TPS != d.TPS {
		t.Fatalf("expected defaults for scale/tps, got %+v", got)
	}
	if got.HUDWidth != 0 {
		t.Fatalf("negative hud width should clamp to 0, got %d", got.HUDWidth)
	}
	if got.Budget != 7 {
		t.Fatalf("budget should be kept, got %d", got.Budget)
	}
}

func TestNormalizedKeepsExplicitValues(t *testing.T) {
	in := Options{Scale: 3, TPS: 30, HUDWidth: 100, Budget: -1}
	if got := in.normalized(); got != in {
		t.Fatalf("expected %+v, got %+v", in, got)
	}
}
