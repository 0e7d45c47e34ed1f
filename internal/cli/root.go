// Package cli wires the wildfire commands together.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"wildfire/internal/config"
	"wildfire/internal/sims/wildfire"
)

// settings are the flag targets shared by every command.
type settings struct {
	opts       config.Options
	configPath string
	logLevel   string
	printN     int
	scale      int
	overrides  map[string]string
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	s := &settings{opts: config.Default()}
	root := &cobra.Command{
		Use:   "wildfire",
		Short: "Simulate the spread of a forest fire",
		Long: "wildfire runs a probabilistic cellular automaton of a burning forest.\n" +
			"By default the simulation runs in overlay display mode; -p N prints\n" +
			"up to N cycles instead.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(s.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", s.logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := s.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runSimulation(cmd.Context(), opts, s.scale, cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.BoolP("help", "H", false, "view simulation options and quit")
	pf.IntVarP(&s.opts.Size, "size", "s", s.opts.Size, "simulation grid size, 5..40")
	pf.IntVarP(&s.opts.Catch, "catch", "c", s.opts.Catch, "probability that a tree will catch fire, 1..100")
	pf.IntVarP(&s.opts.Density, "density", "d", s.opts.Density, "density of trees in the grid, 1..100")
	pf.IntVarP(&s.opts.Burning, "burning", "b", s.opts.Burning, "proportion of trees already burning, 1..100")
	pf.IntVarP(&s.opts.Neighbor, "neighbor", "n", s.opts.Neighbor, "proportion of burning neighbors needed to catch fire, 0..100")
	pf.Int64Var(&s.opts.Seed, "seed", s.opts.Seed, "seed for the random number generator")
	pf.StringVar(&s.configPath, "config", "", "YAML preset; explicit flags override it")
	pf.StringVar(&s.opts.CSVPath, "csv", "", "write results as CSV to this path")
	pf.StringVar(&s.opts.ChartPath, "chart", "", "write a PNG chart to this path")
	pf.StringVar(&s.logLevel, "log", "error", "log level (trace, debug, info, warn, error, fatal, panic)")

	f := root.Flags()
	f.IntVarP(&s.printN, "print", "p", 0, "run in print mode for up to N cycles, 0..10000")
	f.StringVar(&s.opts.Display, "display", s.opts.Display, "display mode: overlay, print or window")
	f.IntVar(&s.opts.TPS, "tps", s.opts.TPS, "cycles per second in overlay and window mode")
	f.IntVar(&s.scale, "scale", 24, "pixels per cell in window mode")

	root.AddCommand(newSweepCommand(s), newParamsCommand(s))
	return root
}

// resolve layers the preset, then every flag the user set explicitly, then
// validates the result.
func (s *settings) resolve(flags *pflag.FlagSet) (config.Options, error) {
	opts := config.Default()
	if s.configPath != "" {
		loaded, err := config.Load(s.configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("size", func() { opts.Size = s.opts.Size })
	set("catch", func() { opts.Catch = s.opts.Catch })
	set("density", func() { opts.Density = s.opts.Density })
	set("burning", func() { opts.Burning = s.opts.Burning })
	set("neighbor", func() { opts.Neighbor = s.opts.Neighbor })
	set("seed", func() { opts.Seed = s.opts.Seed })
	set("csv", func() { opts.CSVPath = s.opts.CSVPath })
	set("chart", func() { opts.ChartPath = s.opts.ChartPath })
	set("display", func() { opts.Display = s.opts.Display })
	set("tps", func() { opts.TPS = s.opts.TPS })
	set("print", func() {
		opts.Display = config.DisplayPrint
		opts.Cycles = s.printN
	})
	if opts.Cycles < wildfire.Unbounded {
		return opts, fmt.Errorf("%w: number of cycles to print must be an integer in [0...%d], got %d",
			config.ErrInvalidOption, config.MaxCycles, opts.Cycles)
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// simConfig resolves the engine configuration including --set overrides.
func (s *settings) simConfig(flags *pflag.FlagSet) (wildfire.Config, error) {
	opts, err := s.resolve(flags)
	if err != nil {
		return wildfire.Config{}, err
	}
	cfg, err := wildfire.ApplyMap(opts.SimConfig(), s.overrides)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", config.ErrInvalidOption, err)
	}
	if err := config.ValidateSim(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// bindOverrides registers the repeatable --set key=value flag.
func (s *settings) bindOverrides(f *pflag.FlagSet) {
	f.StringToStringVar(&s.overrides, "set", nil,
		"override an engine parameter with key=value (size, seed, catch, density, burning, neighbor; probabilities as fractions)")
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		logrus.Debugf("command failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func describe(cfg wildfire.Config) string {
	return fmt.Sprintf("size=%d seed=%d catch=%.2f density=%.2f burning=%.2f neighbor=%.2f",
		cfg.Size, cfg.Seed, cfg.Params.PCatch, cfg.Params.Density, cfg.Params.PBurning, cfg.Params.PNeighbor)
}
