// Package report records the per-cycle counters of a wildfire run and exports
// them as CSV or as a PNG chart.
package report

import (
	"errors"

	"wildfire/internal/sims/wildfire"
)

// ErrNotEnoughData is returned when an export needs more cycles than were
// recorded.
var ErrNotEnoughData = errors.New("not enough data")

// Record is the counter state after one cycle.
type Record struct {
	Cycle      int
	Living     int
	Burning    int
	Ash        int
	Empty      int
	Changes    int
	Cumulative int
}

// History is a wildfire.Reporter that keeps every cycle's counters.
type History struct {
	Records []Record
	Outcome *wildfire.Outcome
}

// NewHistory creates an empty History.
func NewHistory() *History {
	return &History{Records: make([]Record, 0)}
}

// Report appends the counters of f.
func (h *History) Report(f wildfire.Frame) error {
	c := f.Counters
	h.Records = append(h.Records, Record{
		Cycle:      c.Cycle,
		Living:     c.LivingTrees,
		Burning:    c.FireTrees,
		Ash:        c.AshTrees,
		Empty:      c.Spaces,
		Changes:    c.Changes,
		Cumulative: c.CumulativeChanges,
	})
	return nil
}

// Finish stores the outcome of the run.
func (h *History) Finish(o wildfire.Outcome) error {
	h.Outcome = &o
	return nil
}

// Reset drops everything recorded so far so a restarted run starts a fresh
// history.
func (h *History) Reset() {
	h.Records = h.Records[:0]
	h.Outcome = nil
}

// Peak returns the record with the most burning trees. The first one wins a
// tie.
func (h *History) Peak() (Record, bool) {
	if len(h.Records) == 0 {
		return Record{}, false
	}
	best := h.Records[0]
	for _, r := range h.Records[1:] {
		if r.Burning > best.Burning {
			best = r
		}
	}
	return best, true
}

// Multi forwards every frame to each reporter in order and stops at the
// first error.
type Multi []wildfire.Reporter

// Report forwards f.
func (m Multi) Report(f wildfire.Frame) error {
	for _, r := range m {
		if err := r.Report(f); err != nil {
			return err
		}
	}
	return nil
}

// Finish forwards o.
func (m Multi) Finish(o wildfire.Outcome) error {
	for _, r := range m {
		if err := r.Finish(o); err != nil {
			return err
		}
	}
	return nil
}
