package sweep

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wildfire/internal/sims/wildfire"
)

func TestMain(m *testing.M) {
	logrus.SetLevel(logrus.WarnLevel)
	os.Exit(m.Run())
}

func TestCatchRange(t *testing.T) {
	assert.Equal(t, []float64{0.1, 0.3, 0.5}, CatchRange(10, 50, 20))
	assert.Equal(t, []float64{0.4}, CatchRange(40, 40, 0))
	assert.Empty(t, CatchRange(60, 50, 5))
}

func basePlan() Plan {
	cfg := wildfire.DefaultConfig()
	cfg.Size = 15
	cfg.Params.Density = 0.8
	cfg.Params.PNeighbor = 0
	return Plan{Base: cfg, Catches: []float64{0.1, 1}, Trials: 4, MaxCycles: wildfire.Unbounded}
}

func TestRunAggregatesTrials(t *testing.T) {
	results, err := Run(context.Background(), basePlan())
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		assert.Equal(t, 4, r.Trials)
		assert.Equal(t, 4, r.BurnedOut, "unbounded trials always burn out")
		assert.InDelta(t, 1, r.BurnOutRatio(), 1e-12)
		assert.GreaterOrEqual(t, r.MaxBurned, r.MeanBurned)
		assert.LessOrEqual(t, r.MeanBurned, 1.0)
	}
	assert.Greater(t, results[1].MeanBurned, results[0].MeanBurned,
		"certain ignition should burn more than a 10% chance")

	again, err := Run(context.Background(), basePlan())
	require.NoError(t, err)
	assert.Equal(t, results, again, "sweeps are deterministic")
}

func TestRunRespectsCycleBudget(t *testing.T) {
	plan := basePlan()
	plan.Catches = []float64{1}
	plan.MaxCycles = 1
	results, err := Run(context.Background(), plan)
	require.NoError(t, err)
	assert.LessOrEqual(t, results[0].MeanCycles, 1.0)
}

func TestRunRejectsZeroTrials(t *testing.T) {
	plan := basePlan()
	plan.Trials = 0
	_, err := Run(context.Background(), plan)
	assert.Error(t, err)
}

func TestRunStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, basePlan())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBest(t *testing.T) {
	results := []Result{
		{PCatch: 0.1, MeanBurned: 0.2},
		{PCatch: 0.2, MeanBurned: 0.9},
		{PCatch: 0.3, MeanBurned: 0.9},
		{PCatch: 0.4, MeanBurned: 0.5},
	}
	best := Best(results, 2)
	require.Len(t, best, 2)
	assert.Equal(t, 0.2, best[0].PCatch)
	assert.Equal(t, 0.3, best[1].PCatch)
	assert.Len(t, Best(results, 10), 4)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []Result{{PCatch: 0.5, Trials: 2, BurnedOut: 1, MeanCycles: 3, MeanBurned: 0.25, MaxBurned: 0.5}}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "mean burned")
	assert.Contains(t, lines[1], "0.50")
	assert.Contains(t, lines[1], "0.250")
}

func TestSaveChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.png")
	require.NoError(t, SaveChart(path, []Result{{PCatch: 0.1, MeanBurned: 0.1}, {PCatch: 0.9, MeanBurned: 0.8}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	assert.Error(t, SaveChart(path, []Result{{PCatch: 0.1}}))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []Result{{PCatch: 0.3, Trials: 5, BurnedOut: 5, MeanCycles: 7.5, MeanBurned: 0.42, MaxBurned: 0.9}}))
	assert.Equal(t,
		"catch,trials,burned_out,mean_cycles,mean_burned,max_burned\n0.30,5,5,7.500,0.4200,0.9000\n",
		buf.String())
}
