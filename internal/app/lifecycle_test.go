package app

import (
	"context"
	"testing"

	"wildfire/internal/report"
	"wildfire/internal/sims/wildfire"
)

func TestResetReporterClearsHistory(t *testing.T) {
	h := report.NewHistory()
	w := wildfire.New(6)
	if _, err := wildfire.NewController(w, 3, h).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(h.Records) == 0 {
		t.Fatalf("expected recorded cycles")
	}

	resetReporter(h)
	if len(h.Records) != 0 || h.Outcome != nil {
		t.Fatalf("history not cleared: %d records, outcome %v", len(h.Records), h.Outcome)
	}

	w.Reset(0)
	if _, err := wildfire.NewController(w, 3, h).Run(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if h.Records[0].Cycle != 0 {
		t.Fatalf("restarted history should begin at cycle 0, got %d", h.Records[0].Cycle)
	}
}

func TestResetReporterIgnoresPlainReporters(t *testing.T) {
	resetReporter(nil)
	resetReporter(report.Multi{})
}

func TestClosingFollowsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	if closing(ctx) {
		t.Fatalf("live context must keep the window open")
	}
	cancel()
	if !closing(ctx) {
		t.Fatalf("cancelled context must close the window")
	}
}
