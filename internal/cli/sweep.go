package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"wildfire/internal/sims/wildfire"
	"wildfire/internal/sweep"
)

func newSweepCommand(s *settings) *cobra.Command {
	var (
		from, to, step int
		trials         int
		maxCycles      int
		top            int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many seeded fires over a range of catch probabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := s.simConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if from < 1 || to > 100 || from > to {
				return fmt.Errorf("catch range must lie in [1...100] with from <= to, got %d..%d", from, to)
			}
			cmd.SilenceUsage = true

			plan := sweep.Plan{
				Base:      base,
				Catches:   sweep.CatchRange(from, to, step),
				Trials:    trials,
				MaxCycles: maxCycles,
			}
			logrus.Infof("sweeping %d catch values x %d trials from %s", len(plan.Catches), trials, describe(base))
			results, err := sweep.Run(cmd.Context(), plan)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := sweep.WriteTable(out, results); err != nil {
				return err
			}
			if top > 0 {
				fmt.Fprintf(out, "\nTop %d by mean burned fraction:\n", top)
				for i, r := range sweep.Best(results, top) {
					fmt.Fprintf(out, "%d) catch=%.2f burned=%.3f cycles=%.1f\n", i+1, r.PCatch, r.MeanBurned, r.MeanCycles)
				}
			}
			if s.opts.CSVPath != "" {
				if err := sweep.SaveCSV(s.opts.CSVPath, results); err != nil {
					return err
				}
			}
			if s.opts.ChartPath != "" {
				if err := sweep.SaveChart(s.opts.ChartPath, results); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&from, "from", 10, "first catch probability, percent")
	f.IntVar(&to, "to", 100, "last catch probability, percent")
	f.IntVar(&step, "step", 10, "catch probability increment, percent")
	f.IntVar(&trials, "trials", 20, "seeds per catch probability")
	f.IntVar(&maxCycles, "max-cycles", wildfire.Unbounded, "cycle budget per trial, -1 for none")
	f.IntVar(&top, "top", 5, "list the N catch values that burned the most, 0 to skip")
	s.bindOverrides(f)
	return cmd
}
