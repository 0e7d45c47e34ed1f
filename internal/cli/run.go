package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"wildfire/internal/app"
	"wildfire/internal/config"
	"wildfire/internal/render"
	"wildfire/internal/report"
	"wildfire/internal/sims/wildfire"
)

// newScreen is replaced in tests with a simulation screen.
var newScreen = tcell.NewScreen

func runSimulation(ctx context.Context, opts config.Options, scale int, out io.Writer) error {
	cfg := opts.SimConfig()
	logrus.Infof("starting %s run: %s budget=%d", opts.Display, describe(cfg), opts.Budget())
	world := wildfire.NewWithConfig(cfg)

	var history *report.History
	if opts.CSVPath != "" || opts.ChartPath != "" {
		history = report.NewHistory()
	}

	var err error
	switch opts.Display {
	case config.DisplayPrint:
		_, err = runPrint(ctx, world, opts.Budget(), withHistory(render.NewPrinter(out), history))
	case config.DisplayWindow:
		var r wildfire.Reporter
		if history != nil {
			r = history
		}
		err = app.Run(ctx, world, r, app.Options{Scale: scale, TPS: opts.TPS, HUDWidth: app.DefaultOptions().HUDWidth, Budget: opts.Budget()})
	default:
		var screen tcell.Screen
		screen, err = newScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		_, err = runOverlay(ctx, screen, world, opts, history, out)
	}
	if err != nil {
		return err
	}
	return saveHistory(history, opts)
}

func withHistory(r wildfire.Reporter, history *report.History) wildfire.Reporter {
	if history == nil {
		return r
	}
	return report.Multi{r, history}
}

func runPrint(ctx context.Context, w *wildfire.World, budget int, r wildfire.Reporter) (wildfire.Outcome, error) {
	return wildfire.NewController(w, budget, r).Run(ctx)
}

// runOverlay animates the run in place and waits for q once it is over. The
// final frame is printed to out after the screen is released.
func runOverlay(ctx context.Context, screen tcell.Screen, w *wildfire.World, opts config.Options, history *report.History, out io.Writer) (wildfire.Outcome, error) {
	if err := screen.Init(); err != nil {
		return wildfire.Outcome{}, fmt.Errorf("init terminal: %w", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term := render.NewTerminal(screen, opts.TPS)
	ctrl := wildfire.NewController(w, opts.Budget(), withHistory(term, history))
	go term.WatchKeys(cancel)

	err := ctrl.Begin()
	for err == nil && ctrl.Status() == wildfire.Running {
		if err = term.Wait(ctx); err != nil {
			break
		}
		err = ctrl.Tick()
	}
	if err == nil {
		<-ctx.Done()
	}
	screen.Fini()

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logrus.Infof("run stopped at cycle %d", w.Counters().Cycle)
		err = nil
	}
	o := wildfire.Outcome{Status: ctrl.Status(), Counters: w.Counters()}
	if err != nil {
		return o, err
	}
	p := render.NewPrinter(out)
	if err := p.Report(wildfire.Frame{Config: w.Config(), Grid: w.Grid(), Counters: o.Counters}); err != nil {
		return o, err
	}
	return o, p.Finish(o)
}

func saveHistory(h *report.History, opts config.Options) error {
	if h == nil {
		return nil
	}
	if opts.CSVPath != "" {
		if err := h.SaveCSV(opts.CSVPath); err != nil {
			logrus.Errorf("csv export failed: %v", err)
			return err
		}
		logrus.Infof("wrote %d cycles to %s", len(h.Records), opts.CSVPath)
	}
	if opts.ChartPath != "" {
		if err := h.SaveChart(opts.ChartPath, "wildfire"); err != nil {
			logrus.Errorf("chart export failed: %v", err)
			return err
		}
		logrus.Infof("wrote chart to %s", opts.ChartPath)
	}
	return nil
}
