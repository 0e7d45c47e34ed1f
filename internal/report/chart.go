package report

import (
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	livingColor  = drawing.Color{R: 40, G: 120, B: 55, A: 255}
	burningColor = drawing.Color{R: 255, G: 130, B: 40, A: 255}
	ashColor     = drawing.Color{R: 130, G: 130, B: 130, A: 255}
)

// Chart builds a line chart of living, burning and ash trees per cycle.
func (h *History) Chart(title string) (chart.Chart, error) {
	if len(h.Records) < 2 {
		return chart.Chart{}, fmt.Errorf("chart needs at least 2 cycles, have %d: %w", len(h.Records), ErrNotEnoughData)
	}
	n := len(h.Records)
	xs := make([]float64, n)
	living := make([]float64, n)
	burning := make([]float64, n)
	ash := make([]float64, n)
	top := 1.0
	for i, r := range h.Records {
		xs[i] = float64(r.Cycle)
		living[i] = float64(r.Living)
		burning[i] = float64(r.Burning)
		ash[i] = float64(r.Ash)
		if trees := float64(r.Living + r.Burning + r.Ash); trees > top {
			top = trees
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  640,
		Height: 320,
		XAxis: chart.XAxis{
			Name:  "cycle",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: xs[0], Max: xs[n-1]},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "trees",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: top},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "living",
				XValues: xs,
				YValues: living,
				Style:   chart.Style{StrokeColor: livingColor, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "burning",
				XValues: xs,
				YValues: burning,
				Style:   chart.Style{StrokeColor: burningColor, StrokeWidth: 3.0},
			},
			chart.ContinuousSeries{
				Name:    "ash",
				XValues: xs,
				YValues: ash,
				Style:   chart.Style{StrokeColor: ashColor, StrokeWidth: 3.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// WriteChart renders the chart as PNG.
func (h *History) WriteChart(w io.Writer, title string) error {
	graph, err := h.Chart(title)
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}

// SaveChart renders the chart to path. Nothing is created when the history is
// too short to chart.
func (h *History) SaveChart(path, title string) error {
	graph, err := h.Chart(title)
	if err != nil {
		return err
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
