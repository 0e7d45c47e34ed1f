package wildfire

import "fmt"

// Counters tracks the tree population and change totals of one run.
type Counters struct {
	// Cycle is the index of the last completed cycle; 0 after initialization.
	Cycle int

	InitialTrees int
	// TotalTrees counts trees not yet reduced to ash.
	TotalTrees  int
	FireTrees   int
	LivingTrees int
	AshTrees    int
	Spaces      int

	Changes           int
	CumulativeChanges int
}

// Check verifies the accounting identities between the population counters.
func (c Counters) Check() error {
	if c.TotalTrees != c.LivingTrees+c.FireTrees {
		return fmt.Errorf("total trees %d != living %d + burning %d", c.TotalTrees, c.LivingTrees, c.FireTrees)
	}
	if c.InitialTrees != c.LivingTrees+c.FireTrees+c.AshTrees {
		return fmt.Errorf("initial trees %d != living %d + burning %d + ash %d",
			c.InitialTrees, c.LivingTrees, c.FireTrees, c.AshTrees)
	}
	return nil
}

// BurnedFraction is the share of the initial trees that turned to ash.
func (c Counters) BurnedFraction() float64 {
	if c.InitialTrees == 0 {
		return 0
	}
	return float64(c.AshTrees) / float64(c.InitialTrees)
}
