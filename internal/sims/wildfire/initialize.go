package wildfire

import (
	"math"

	prng "wildfire/pkg/core"
)

// roundHalfUp rounds x to the nearest integer, with halves going up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// Initialize derives the cycle-0 population from the grid size and the two
// seeding fractions, then scatters it over a fresh grid. Inputs are assumed
// valid; a density that rounds to zero or to the full area still yields a
// legal grid.
func Initialize(size int, density, pBurning float64, rng prng.Source) (*Grid, Counters) {
	area := size * size
	totalTrees := roundHalfUp(float64(area) * density)
	fireTrees := roundHalfUp(float64(totalTrees) * pBurning)
	livingTrees := totalTrees - fireTrees
	spaces := area - totalTrees

	data := make([]Cell, 0, area)
	for i := 0; i < spaces; i++ {
		data = append(data, Empty)
	}
	for i := 0; i < livingTrees; i++ {
		data = append(data, Tree)
	}
	for i := 0; i < fireTrees; i++ {
		data = append(data, IgnitedNow)
	}
	shuffle(data, rng)

	g := NewGrid(size)
	copy(g.cells, data)

	return g, Counters{
		InitialTrees: totalTrees,
		TotalTrees:   totalTrees,
		FireTrees:    fireTrees,
		LivingTrees:  livingTrees,
		Spaces:       spaces,
	}
}

// shuffle permutes data with a single swap pass. The partner index may fall
// before i, so the permutation is not uniform; runs depend on that order and
// it must stay as is.
func shuffle(data []Cell, rng prng.Source) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		j := (i + int(rng.Int31())) % n
		data[i], data[j] = data[j], data[i]
	}
}
