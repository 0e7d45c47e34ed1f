package wildfire

import (
	"slices"
	"testing"

	prng "wildfire/pkg/core"
)

func TestFullyBurningGridTurnsToAsh(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Params.Density = 1
	cfg.Params.PBurning = 1
	world := NewWithConfig(cfg)

	if got := world.Grid().CountOf(IgnitedNow); got != 25 {
		t.Fatalf("cycle 0 should have 25 ignited cells, got %d", got)
	}

	for stage := 0; stage < BurnStages; stage++ {
		world.Step()
		if got := world.Grid().CountOf(Burning(stage)); got != 25 {
			t.Fatalf("cycle %d: %d cells in %v, want 25", stage+1, got, Burning(stage))
		}
		if world.Counters().FireTrees != 25 {
			t.Fatalf("cycle %d: fire trees %d", stage+1, world.Counters().FireTrees)
		}
	}

	world.Step()
	c := world.Counters()
	if got := world.Grid().CountOf(Ash); got != 25 {
		t.Fatalf("cycle 4: %d ash cells, want 25", got)
	}
	if c.FireTrees != 0 || c.TotalTrees != 0 || c.AshTrees != 25 {
		t.Fatalf("final counters: %+v", c)
	}
	if c.Changes != 25 || c.CumulativeChanges != 25 || c.Cycle != 4 {
		t.Fatalf("change counters: %+v", c)
	}
}

func TestEmptyGridIsInert(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Params.Density = 0
	world := NewWithConfig(cfg)

	if got := world.Grid().CountOf(Empty); got != 25 {
		t.Fatalf("expected an all-empty grid, got %d empty cells", got)
	}
	if IsTerminal(world.Counters(), Unbounded) != BurnedOut {
		t.Fatal("a grid without fire must count as burned out")
	}
	for i := 0; i < 10; i++ {
		world.Step()
	}
	if world.Grid().CountOf(Empty) != 25 || world.Counters().CumulativeChanges != 0 {
		t.Fatalf("empty grid changed: %+v", world.Counters())
	}
}

func TestWorldDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 20
	cfg.Seed = 7
	cfg.Params.PCatch = 0.6
	cfg.Params.PNeighbor = 0.1

	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	for cycle := 0; cycle < 30; cycle++ {
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("cycle %d: grids diverged", cycle)
		}
		if a.Counters() != b.Counters() {
			t.Fatalf("cycle %d: counters diverged: %+v vs %+v", cycle, a.Counters(), b.Counters())
		}
		a.Step()
		b.Step()
	}

	cfg.Seed = 8
	other := NewWithConfig(cfg)
	a.Reset(0)
	if slices.Equal(a.Cells(), other.Cells()) {
		t.Fatal("different seeds should produce different initial grids")
	}
}

func TestResetRestoresCycleZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 12
	world := NewWithConfig(cfg)
	initial := append([]uint8(nil), world.Cells()...)
	initialCounters := world.Counters()

	for i := 0; i < 5; i++ {
		world.Step()
	}
	world.Reset(0)

	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if world.Counters() != initialCounters {
		t.Fatalf("counters after reset %+v, want %+v", world.Counters(), initialCounters)
	}

	world.Reset(777)
	seeded := append([]uint8(nil), world.Cells()...)
	world.Reset(777)
	if !slices.Equal(seeded, world.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
}

func TestAccountingHoldsEveryCycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 25
	cfg.Params.Density = 0.8
	cfg.Params.PCatch = 0.7
	cfg.Params.PNeighbor = 0
	world := NewWithConfig(cfg)

	for cycle := 0; cycle < 60; cycle++ {
		c := world.Counters()
		if err := c.Check(); err != nil {
			t.Fatalf("cycle %d: %v", cycle, err)
		}
		g := world.Grid()
		if g.CountOf(Tree) != c.LivingTrees || g.Count(Cell.OnFire) != c.FireTrees || g.CountOf(Ash) != c.AshTrees {
			t.Fatalf("cycle %d: grid and counters disagree: %+v", cycle, c)
		}
		if g.CountOf(Empty) != c.Spaces {
			t.Fatalf("cycle %d: spaces changed", cycle)
		}
		world.Step()
	}
}

func TestWorldWithScriptedSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 5
	cfg.Params.Density = 0.5
	cfg.Params.PBurning = 0.5
	world := NewWithSource(cfg, &prng.Sequence{Ints: []int32{0}})

	// Zero shuffle draws keep the concatenation order: the last seven cells
	// burn and the six trees before them sit in rows 2 and 3.
	if got := world.Grid().Row(3); got != "YYY**" {
		t.Fatalf("row 3 = %q", got)
	}
	if got := world.StatusLine(); got != "cycle 0, size 5, probability 0.30, density 0.50, proportion 0.25, changes 0" {
		t.Fatalf("status line = %q", got)
	}
}

func TestWorldPaletteCoversEveryCell(t *testing.T) {
	world := New(5)
	palette := world.Palette()
	if len(palette) != int(Ash)+1 {
		t.Fatalf("palette has %d entries", len(palette))
	}
	for c := IgnitedNow; c <= Burning2; c++ {
		if palette[c] != palette[IgnitedNow] {
			t.Fatalf("%v must share the fire color", c)
		}
	}
	if palette[Tree] == palette[Ash] || palette[Empty] == palette[Tree] {
		t.Fatal("distinct states need distinct colors")
	}
}

func TestParameterSnapshot(t *testing.T) {
	world := New(17)
	snap := world.Parameters()
	p, ok := snap.Lookup("size")
	if !ok || p.Value != "17" {
		t.Fatalf("size parameter = %+v, %v", p, ok)
	}
	p, ok = snap.Lookup("neighbor")
	if !ok || p.Value != "0.25" {
		t.Fatalf("neighbor parameter = %+v, %v", p, ok)
	}
}

func TestApplyMap(t *testing.T) {
	cfg, err := ApplyMap(DefaultConfig(), map[string]string{"size": "30", "catch": "0.75", "seed": "-3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 30 || cfg.Params.PCatch != 0.75 || cfg.Seed != -3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := ApplyMap(DefaultConfig(), map[string]string{"density": "1.5"}); err == nil {
		t.Fatal("expected out-of-range fraction to be rejected")
	}
	if _, err := ApplyMap(DefaultConfig(), map[string]string{"wind": "1"}); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}
