// Package wildfire simulates a forest fire on a square grid as a
// probabilistic cellular automaton.
package wildfire

import (
	"fmt"

	"wildfire/internal/core"
	prng "wildfire/pkg/core"
)

var (
	_ core.Sim               = (*World)(nil)
	_ core.Stats             = (*World)(nil)
	_ core.ParameterProvider = (*World)(nil)
)

// World owns the grid, the counters and the random source of one run. It is
// not safe for concurrent use.
type World struct {
	cfg Config

	curr *Grid
	next *Grid

	counters Counters
	display  []uint8

	rng    prng.Source
	ownRNG bool
}

// New returns a wildfire world with the given grid side using defaults.
func New(size int) *World {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world seeded from cfg.Seed and initialized for
// cycle 0.
func NewWithConfig(cfg Config) *World {
	w := &World{cfg: cfg, ownRNG: true}
	w.Reset(0)
	return w
}

// NewWithSource returns a world that draws from src instead of a seeded
// generator. Reset keeps using src.
func NewWithSource(cfg Config, src prng.Source) *World {
	w := &World{cfg: cfg, rng: src}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells exposes the current grid as raw cell values for the pixel renderers.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the current generation. It is overwritten two cycles later;
// Clone it to keep a copy.
func (w *World) Grid() *Grid { return w.curr }

// Counters returns a copy of the run counters.
func (w *World) Counters() Counters { return w.counters }

// Reset rebuilds cycle 0. A zero seed means the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if w.ownRNG {
		w.rng = prng.NewRNG(effective)
	}
	p := w.cfg.Params
	w.curr, w.counters = Initialize(w.cfg.Size, p.Density, p.PBurning, w.rng)
	w.next = NewGrid(w.cfg.Size)
	w.display = make([]uint8, len(w.curr.cells))
	w.rebuildDisplay()
}

// Step advances the world by one cycle.
func (w *World) Step() {
	changes := advanceInto(w.next, w.curr, w.cfg.Params, &w.counters, w.rng)
	w.curr, w.next = w.next, w.curr
	w.counters.CumulativeChanges += changes
	w.counters.Cycle++
	w.rebuildDisplay()
}

// StatusLine summarizes the last completed cycle.
func (w *World) StatusLine() string {
	return FormatStatus(w.cfg, w.counters)
}

// FormatStatus renders the per-cycle status line shown under the grid.
func FormatStatus(cfg Config, c Counters) string {
	return fmt.Sprintf("cycle %d, size %d, probability %.2f, density %.2f, proportion %.2f, changes %d",
		c.Cycle, cfg.Size, cfg.Params.PCatch, cfg.Params.Density, cfg.Params.PNeighbor, c.Changes)
}

// FormatFiresOut renders the closing line of a run that burned out.
func FormatFiresOut(c Counters) string {
	return fmt.Sprintf("fires are out after %d cumulative changes.", c.CumulativeChanges)
}

func (w *World) rebuildDisplay() {
	for i, c := range w.curr.cells {
		w.display[i] = uint8(c)
	}
}
