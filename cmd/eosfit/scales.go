package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmera/goeos/eosio"
	"github.com/rmera/goeos/scale"
)

type scalesReport struct {
	Scales  []float64 `yaml:"lattice_scales,flow"`
	Volumes []float64 `yaml:"volumes,omitempty,flow"`
}

func newScalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scales",
		Short: "Print the lattice scale factors for an EoS curve",
		Long: `scales prints the linear scale factors that take a cell from --vmin to --vmax times its
volume, in --points steps. If a reference volume (--volume) or the 9 components of the
lattice vectors (--cell) are given, the resulting volumes are printed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()
			s, err := scale.LatticeScales(cfg.VMin, cfg.VMax, cfg.Points)
			if err != nil {
				return err
			}
			rep := &scalesReport{Scales: s}
			cell, err := cmd.Flags().GetFloat64Slice("cell")
			if err != nil {
				return err
			}
			switch {
			case len(cell) > 0 && cfg.Volume > 0:
				return fmt.Errorf("give either --cell or --volume, not both")
			case len(cell) > 0:
				st, err := scale.NewStructure(cell, nil, nil)
				if err != nil {
					return err
				}
				rep.Volumes = st.Volumes(s)
			case cfg.Volume > 0:
				rep.Volumes = make([]float64, len(s))
				for i, v := range s {
					rep.Volumes[i] = cfg.Volume * v * v * v
				}
			}
			return eosio.WriteYAML(cmd.OutOrStdout(), rep)
		},
	}
	fs := cmd.Flags()
	fs.Float64("vmin", 0.94, "smallest volume, relative to the reference one")
	fs.Float64("vmax", 1.06, "largest volume, relative to the reference one")
	fs.IntP("points", "n", 7, "number of points")
	fs.Float64("volume", 0, "reference volume")
	fs.Float64Slice("cell", nil, "lattice vectors, 9 comma-separated numbers, row by row")
	return cmd
}
