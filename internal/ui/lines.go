// Package ui draws the side panel and the cell overlays of the window display.
package ui

import (
	"fmt"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

// Line is one row of panel text.
type Line struct {
	Text   string
	Header bool
	Dim    bool
}

// PanelLines lays out the panel: parameter groups, then the counters of the
// last cycle, then the run state and the key help.
func PanelLines(snap core.ParameterSnapshot, c wildfire.Counters, status wildfire.Status) []Line {
	var lines []Line
	for _, g := range snap.Groups {
		lines = append(lines, Line{Text: g.Name, Header: true})
		for _, p := range g.Params {
			lines = append(lines, Line{Text: fmt.Sprintf("%-20s%s", p.Label, p.Value)})
		}
	}
	lines = append(lines,
		Line{Text: "Counters", Header: true},
		Line{Text: fmt.Sprintf("%-20s%d", "Cycle", c.Cycle)},
		Line{Text: fmt.Sprintf("%-20s%d", "Living", c.LivingTrees)},
		Line{Text: fmt.Sprintf("%-20s%d", "Burning", c.FireTrees)},
		Line{Text: fmt.Sprintf("%-20s%d", "Ash", c.AshTrees)},
		Line{Text: fmt.Sprintf("%-20s%d", "Changes", c.Changes)},
		Line{Text: fmt.Sprintf("%-20s%d", "Cumulative", c.CumulativeChanges)},
		Line{Text: fmt.Sprintf("%-20s%.1f%%", "Burned", 100*c.BurnedFraction())},
	)
	switch status {
	case wildfire.BurnedOut:
		lines = append(lines, Line{Text: wildfire.FormatFiresOut(c), Header: true})
	case wildfire.BudgetExhausted:
		lines = append(lines, Line{Text: "cycle budget exhausted", Header: true})
	}
	lines = append(lines,
		Line{Text: "space pause  n step  r reset", Dim: true},
		Line{Text: "s reseed  1 exposure  2 front", Dim: true},
		Line{Text: "q quit", Dim: true},
	)
	return lines
}
