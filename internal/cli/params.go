package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"wildfire/internal/core"
	"wildfire/internal/sims/wildfire"
)

func newParamsCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the resolved simulation parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.simConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return writeParameters(cmd.OutOrStdout(), wildfire.NewWithConfig(cfg))
		},
	}
	s.bindOverrides(cmd.Flags())
	return cmd
}

func writeParameters(w io.Writer, p core.ParameterProvider) error {
	for _, g := range p.Parameters().Groups {
		if _, err := fmt.Fprintln(w, g.Name); err != nil {
			return err
		}
		for _, param := range g.Params {
			if _, err := fmt.Fprintf(w, "  %-20s %-8s %s\n", param.Label, param.Value, param.Description); err != nil {
				return err
			}
		}
	}
	return nil
}
