package app

import "errors"

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("window display requires building with -tags ebiten")

// Options controls the window.
type Options struct {
	Scale    int
	TPS      int
	HUDWidth int
	// Budget is the cycle budget of every run, wildfire.Unbounded for none.
	Budget int
}

// DefaultOptions returns the window settings used when none are given.
func DefaultOptions() Options {
	return Options{Scale: 24, TPS: 2, HUDWidth: 260, Budget: -1}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Scale <= 0 {
		o.Scale = d.Scale
	}
	if o.TPS <= 0 {
		o.TPS = d.TPS
	}
	if o.HUDWidth < 0 {
		o.HUDWidth = 0
	}
	return o
}
