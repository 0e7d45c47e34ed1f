package wildfire

import prng "wildfire/pkg/core"

// neighborOffsets lists (row, col) deltas in the order N, E, S, W, NE, SE,
// SW, NW.
var neighborOffsets = [8][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

// neighborCounts returns how many in-bounds neighbors of (row, col) hold a
// tree in any state, and how many of those are on fire.
func neighborCounts(g *Grid, row, col int) (total, burning int) {
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.InBounds(r, c) {
			continue
		}
		v := g.At(r, c)
		if !v.TreeLike() {
			continue
		}
		total++
		if v.OnFire() {
			burning++
		}
	}
	return total, burning
}

// catches decides whether a tree with the given neighborhood ignites. A draw
// is taken only when the burning share exceeds the threshold.
func catches(total, burning int, p Params, rng prng.Source) bool {
	if !exceedsThreshold(total, burning, p.PNeighbor) {
		return false
	}
	return rng.Float64() < p.PCatch
}

// exceedsThreshold reports whether the burning share of total strictly
// exceeds threshold. An empty neighborhood never does.
func exceedsThreshold(total, burning int, threshold float64) bool {
	if total == 0 {
		return false
	}
	return float64(burning)/float64(total) > threshold
}

// Advance computes the next generation of g into a newly allocated grid and
// returns it with the number of ignitions plus ash conversions. Population
// counters and counters.Changes are updated in place; adding the change
// count to CumulativeChanges is left to the caller.
func Advance(g *Grid, p Params, counters *Counters, rng prng.Source) (*Grid, int) {
	next := NewGrid(g.N)
	changes := advanceInto(next, g, p, counters, rng)
	return next, changes
}

// advanceInto writes every cell of dst from the snapshot src. Cells are
// visited row-major, which fixes the order of random draws.
func advanceInto(dst, src *Grid, p Params, counters *Counters, rng prng.Source) int {
	changes := 0
	for row := 0; row < src.N; row++ {
		for col := 0; col < src.N; col++ {
			cur := src.At(row, col)
			next := cur
			switch cur {
			case IgnitedNow:
				next = Burning0
			case Burning0, Burning1:
				next = cur + 1
			case Burning2:
				next = Ash
				counters.TotalTrees--
				counters.FireTrees--
				counters.AshTrees++
				changes++
			case Tree:
				total, burning := neighborCounts(src, row, col)
				if catches(total, burning, p, rng) {
					next = Burning0
					counters.FireTrees++
					counters.LivingTrees--
					changes++
				}
			}
			dst.Set(row, col, next)
		}
	}
	counters.Changes = changes
	return changes
}
