// Package sweep measures how the catch probability shapes a fire by running
// many seeded wildfire worlds to completion.
package sweep

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"wildfire/internal/sims/wildfire"
)

// Plan lists the scenarios to evaluate.
type Plan struct {
	Base wildfire.Config
	// Catches are the catch probabilities (fractions) to try.
	Catches []float64
	// Trials is the number of seeds per catch probability. Trial i uses
	// Base.Seed+i.
	Trials int
	// MaxCycles bounds each trial; wildfire.Unbounded runs to burn-out.
	MaxCycles int
}

// Result aggregates the trials of one catch probability.
type Result struct {
	PCatch     float64
	Trials     int
	BurnedOut  int
	MeanCycles float64
	MeanBurned float64
	MaxBurned  float64
}

// BurnOutRatio is the share of trials in which every fire went out.
func (r Result) BurnOutRatio() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.BurnedOut) / float64(r.Trials)
}

// CatchRange returns percentages from..to inclusive in steps, as fractions.
func CatchRange(from, to, step int) []float64 {
	if step <= 0 {
		step = 1
	}
	var out []float64
	for p := from; p <= to; p += step {
		out = append(out, float64(p)/100)
	}
	return out
}

// Run evaluates every scenario one after another.
func Run(ctx context.Context, plan Plan) ([]Result, error) {
	if plan.Trials <= 0 {
		return nil, fmt.Errorf("trials must be positive, got %d", plan.Trials)
	}
	results := make([]Result, 0, len(plan.Catches))
	for _, pc := range plan.Catches {
		res := Result{PCatch: pc, Trials: plan.Trials}
		var cycles, burned float64
		for trial := 0; trial < plan.Trials; trial++ {
			cfg := plan.Base
			cfg.Params.PCatch = pc
			cfg.Seed = plan.Base.Seed + int64(trial)

			out, err := wildfire.NewController(wildfire.NewWithConfig(cfg), plan.MaxCycles, nil).Run(ctx)
			if err != nil {
				return results, fmt.Errorf("catch %.2f trial %d: %w", pc, trial, err)
			}
			if out.FiresOut() {
				res.BurnedOut++
			}
			frac := out.Counters.BurnedFraction()
			cycles += float64(out.Counters.Cycle)
			burned += frac
			if frac > res.MaxBurned {
				res.MaxBurned = frac
			}
		}
		res.MeanCycles = cycles / float64(plan.Trials)
		res.MeanBurned = burned / float64(plan.Trials)
		logrus.Infof("catch %.2f: mean burned %.3f over %d trials (%.1f cycles)",
			pc, res.MeanBurned, plan.Trials, res.MeanCycles)
		results = append(results, res)
	}
	return results, nil
}

// Best returns up to n results ordered by mean burned fraction, highest
// first. Ties keep the lower catch probability first.
func Best(results []Result, n int) []Result {
	sorted := append([]Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MeanBurned > sorted[j].MeanBurned })
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// WriteTable prints an aligned summary.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "catch\ttrials\tburned out\tmean cycles\tmean burned\tmax burned\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%d\t%.2f\t%.1f\t%.3f\t%.3f\t\n",
			r.PCatch, r.Trials, r.BurnOutRatio(), r.MeanCycles, r.MeanBurned, r.MaxBurned)
	}
	return tw.Flush()
}

// WriteCSV writes one row per catch probability.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"catch", "trials", "burned_out", "mean_cycles", "mean_burned", "max_burned"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			strconv.FormatFloat(r.PCatch, 'f', 2, 64),
			strconv.Itoa(r.Trials),
			strconv.Itoa(r.BurnedOut),
			strconv.FormatFloat(r.MeanCycles, 'f', 3, 64),
			strconv.FormatFloat(r.MeanBurned, 'f', 4, 64),
			strconv.FormatFloat(r.MaxBurned, 'f', 4, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the results to path.
func SaveCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// SaveChart plots the mean burned fraction against the catch probability.
func SaveChart(path string, results []Result) error {
	if len(results) < 2 {
		return fmt.Errorf("chart needs at least 2 catch values, have %d", len(results))
	}
	xs := make([]float64, len(results))
	ys := make([]float64, len(results))
	for i, r := range results {
		xs[i] = r.PCatch
		ys[i] = r.MeanBurned
	}
	graph := chart.Chart{
		Title:  "burned fraction by catch probability",
		Width:  640,
		Height: 320,
		XAxis: chart.XAxis{
			Name:  "catch probability",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: xs[0], Max: xs[len(xs)-1]},
		},
		YAxis: chart.YAxis{
			Name:  "mean burned",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean burned",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 255, G: 130, B: 40, A: 255}, StrokeWidth: 3.0},
			},
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
