package app

import (
	"context"

	"wildfire/internal/sims/wildfire"
)

// resetter is implemented by reporters that keep per-run state.
type resetter interface {
	Reset()
}

// resetReporter clears r before a restarted run so exports only hold the
// run that is on screen.
func resetReporter(r wildfire.Reporter) {
	if rs, ok := r.(resetter); ok {
		rs.Reset()
	}
}

// closing reports whether the window should shut down because ctx, usually
// cancelled by SIGINT, is done.
func closing(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}
