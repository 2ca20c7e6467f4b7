package main

import (
	"fmt"

	"github.com/spf13/cobra"

	eos "github.com/rmera/goeos"
	"github.com/rmera/goeos/eosio"
)

func newDeltaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delta A B",
		Short: "Compare two curves of the same structure with the Delta factor",
		Long: `delta fits both energy-volume files and prints the Delta factor between the fits,
in meV/atom. Both curves must span the same volume range. The number of atoms is taken
from --natoms or, if not given, from the natoms header of the files.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()
			o := cfg.options()
			o.Logger = log
			a, err := eosio.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := eosio.ReadFile(args[1])
			if err != nil {
				return err
			}
			natoms, err := pickNAtoms(cfg.NAtoms, a, b)
			if err != nil {
				return err
			}
			rep := &eosio.DeltaReport{A: args[0], B: args[1], NAtoms: natoms}
			d, err := eos.Delta(a.Samples, b.Samples, natoms, o)
			if err != nil {
				log.Info("comparison failed", "trace", eos.Trace(err))
				rep.Error = err.Error()
			} else {
				rep.Delta = d
			}
			if werr := eosio.WriteYAML(cmd.OutOrStdout(), rep); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().Int("natoms", 0, "number of atoms in the cell")
	return cmd
}

//pickNAtoms returns flag if positive, otherwise the natoms header of the datasets,
//which must agree.
func pickNAtoms(flag int, a, b *eosio.Dataset) (int, error) {
	if flag > 0 {
		return flag, nil
	}
	switch {
	case a.NAtoms == 0 && b.NAtoms == 0:
		return 0, fmt.Errorf("the number of atoms is not in the files, use --natoms")
	case a.NAtoms == 0:
		return b.NAtoms, nil
	case b.NAtoms == 0, a.NAtoms == b.NAtoms:
		return a.NAtoms, nil
	}
	return 0, fmt.Errorf("the files disagree on the number of atoms: %d and %d", a.NAtoms, b.NAtoms)
}
