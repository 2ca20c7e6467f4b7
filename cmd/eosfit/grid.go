package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	eos "github.com/rmera/goeos"
	"github.com/rmera/goeos/eosio"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid FILE",
		Short: "Print the fitted curve on a dense volume grid",
		Long: `grid fits the energy-volume file and prints "V E" pairs of the fitted curve, from
the smallest sampled volume up to the largest one, every --step. With --relative,
energies are given relative to the fitted E0. The output is meant for plotting programs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()
			o := cfg.options()
			o.Logger = log
			d, err := eosio.ReadFile(args[0])
			if err != nil {
				return err
			}
			r, err := eos.Fit(d.Samples, o)
			if err != nil {
				return err
			}
			P := r.Params
			if cfg.Relative {
				P = P.Relative()
			}
			vmin, vmax := d.Samples.Range()
			pts, err := eos.Grid(P, vmin, vmax, cfg.Step)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			fmt.Fprintf(w, "# %s\n", P)
			for _, p := range pts {
				fmt.Fprintf(w, "%.6f %.10f\n", p.X, p.Y)
			}
			return w.Flush()
		},
	}
	addFitFlags(cmd.Flags())
	cmd.Flags().Float64("step", 0.01, "volume step of the grid")
	cmd.Flags().Bool("relative", false, "print energies relative to the fitted E0")
	return cmd
}
