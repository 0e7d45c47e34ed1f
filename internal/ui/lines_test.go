package ui

import (
	"fmt"
	"strings"
	"testing"

	"wildfire/internal/sims/wildfire"
)

func TestPanelLinesListParametersAndCounters(t *testing.T) {
	cfg := wildfire.DefaultConfig()
	c := wildfire.Counters{Cycle: 4, InitialTrees: 10, LivingTrees: 5, FireTrees: 2, AshTrees: 3, TotalTrees: 7}
	lines := PanelLines(wildfire.ParameterSnapshot(cfg), c, wildfire.Running)

	var all []string
	headers := 0
	for _, l := range lines {
		all = append(all, l.Text)
		if l.Header {
			headers++
		}
	}
	text := strings.Join(all, "\n")
	for _, want := range []string{"World", "Fire", "Catch probability", fmt.Sprintf("%-20s%d", "Cycle", 4), fmt.Sprintf("%-20s%d", "Ash", 3), "30.0%"} {
		if !strings.Contains(text, want) {
			t.Fatalf("panel missing %q:\n%s", want, text)
		}
	}
	if headers != 3 {
		t.Fatalf("expected 3 headers while running, got %d", headers)
	}
}

func TestPanelLinesAnnounceBurnOut(t *testing.T) {
	c := wildfire.Counters{CumulativeChanges: 12}
	lines := PanelLines(wildfire.ParameterSnapshot(wildfire.DefaultConfig()), c, wildfire.BurnedOut)
	found := false
	for _, l := range lines {
		if l.Text == "fires are out after 12 cumulative changes." {
			found = true
		}
	}
	if !found {
		t.Fatalf("burn-out line missing")
	}
}
