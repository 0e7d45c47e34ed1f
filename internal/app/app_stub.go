//go:build !ebiten

package app

import (
	"context"

	"wildfire/internal/sims/wildfire"
)

// Run reports that the window display is not compiled in.
func Run(context.Context, *wildfire.World, wildfire.Reporter, Options) error {
	return ErrNoGUI
}
