package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement so the
// display layers can drive it without knowing its rules.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Stats is implemented by sims that expose counters for a status line.
type Stats interface {
	StatusLine() string
}
