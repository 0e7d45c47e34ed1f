package wildfire

// Cell is the state of one grid site.
type Cell uint8

const (
	// Empty marks a site that never held a tree.
	Empty Cell = iota
	// Tree is a living, unburned tree.
	Tree
	// IgnitedNow is a tree that caught fire during initialization.
	IgnitedNow
	// Burning0 through Burning2 count the cycles a tree has been burning.
	Burning0
	Burning1
	Burning2
	// Ash is a tree that finished burning.
	Ash
)

// BurnStages is the number of Burning stages before a tree turns to ash.
const BurnStages = 3

// Burning returns the burning cell for the given stage (0..2).
func Burning(stage int) Cell {
	if stage < 0 {
		stage = 0
	}
	if stage >= BurnStages {
		stage = BurnStages - 1
	}
	return Burning0 + Cell(stage)
}

// TreeLike reports whether the cell holds a tree that has not become ash.
func (c Cell) TreeLike() bool { return c >= Tree && c <= Burning2 }

// OnFire reports whether the cell is ignited or in any burning stage.
func (c Cell) OnFire() bool { return c >= IgnitedNow && c <= Burning2 }

// Stage returns the burning stage, or false when the cell is not Burning.
func (c Cell) Stage() (int, bool) {
	if c < Burning0 || c > Burning2 {
		return 0, false
	}
	return int(c - Burning0), true
}

// Symbol is the character used by the text displays. All fire states share
// one symbol.
func (c Cell) Symbol() byte {
	switch {
	case c == Tree:
		return 'Y'
	case c.OnFire():
		return '*'
	case c == Ash:
		return '.'
	default:
		return ' '
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case IgnitedNow:
		return "ignited"
	case Burning0:
		return "burning(0)"
	case Burning1:
		return "burning(1)"
	case Burning2:
		return "burning(2)"
	case Ash:
		return "ash"
	default:
		return "invalid"
	}
}
