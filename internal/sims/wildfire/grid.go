package wildfire

import "strings"

// Grid stores a square matrix of cells in row-major order.
type Grid struct {
	N     int
	cells []Cell
}

// NewGrid allocates an all-empty grid with side n.
func NewGrid(n int) *Grid {
	if n < 0 {
		n = 0
	}
	return &Grid{N: n, cells: make([]Cell, n*n)}
}

// GridFromRows builds a grid from rows of symbols as produced by String.
// Digits 0-2 denote burning stages and '+' denotes IgnitedNow, so tests can
// describe every state. Short rows are padded with Empty.
func GridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		for c := 0; c < g.N && c < len(row); c++ {
			g.Set(r, c, cellFromSymbol(row[c]))
		}
	}
	return g
}

func cellFromSymbol(b byte) Cell {
	switch b {
	case 'Y':
		return Tree
	case '+':
		return IgnitedNow
	case '*', '0':
		return Burning0
	case '1':
		return Burning1
	case '2':
		return Burning2
	case '.':
		return Ash
	default:
		return Empty
	}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.N + col }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// At returns the cell at (row, col).
func (g *Grid) At(row, col int) Cell { return g.cells[g.Index(row, col)] }

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v Cell) { g.cells[g.Index(row, col)] = v }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{N: g.N, cells: append([]Cell(nil), g.cells...)}
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(Cell) bool) int {
	n := 0
	for _, c := range g.cells {
		if match(c) {
			n++
		}
	}
	return n
}

// CountOf returns how many cells equal v.
func (g *Grid) CountOf(v Cell) int {
	return g.Count(func(c Cell) bool { return c == v })
}

// Row renders one row as display symbols.
func (g *Grid) Row(row int) string {
	b := make([]byte, g.N)
	for c := 0; c < g.N; c++ {
		b[c] = g.At(row, c).Symbol()
	}
	return string(b)
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.N; r++ {
		sb.WriteString(g.Row(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
