package wildfire

// ExposureMask returns, for every living tree, the share of its tree-like
// neighbors that are on fire. Other cells are 0.
func ExposureMask(g *Grid) []float32 {
	return treeMask(g, func(total, burning int) float32 {
		return float32(burning) / float32(total)
	})
}

// FrontMask marks with 1 the living trees that may ignite next cycle, those
// whose burning share exceeds p.PNeighbor. It applies the same test as the
// spread engine.
func FrontMask(g *Grid, p Params) []float32 {
	return treeMask(g, func(total, burning int) float32 {
		if exceedsThreshold(total, burning, p.PNeighbor) {
			return 1
		}
		return 0
	})
}

func treeMask(g *Grid, value func(total, burning int) float32) []float32 {
	mask := make([]float32, len(g.cells))
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			if g.At(row, col) != Tree {
				continue
			}
			total, burning := neighborCounts(g, row, col)
			if total > 0 {
				mask[g.Index(row, col)] = value(total, burning)
			}
		}
	}
	return mask
}

// ExposureMask is ExposureMask over the current grid.
func (w *World) ExposureMask() []float32 { return ExposureMask(w.curr) }

// FrontMask is FrontMask over the current grid with the world's parameters.
func (w *World) FrontMask() []float32 { return FrontMask(w.curr, w.cfg.Params) }
