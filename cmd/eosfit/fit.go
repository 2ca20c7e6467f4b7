package main

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	eos "github.com/rmera/goeos"
	"github.com/rmera/goeos/eosio"
)

func newFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit FILE...",
		Short: "Fit the Birch-Murnaghan equation of state to each file",
		Long: `fit fits every given energy-volume file and prints one YAML report per file.
Files that can't be read or fitted are reported with their error; they don't stop the rest.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, sync, err := setup(cmd)
			if err != nil {
				return err
			}
			defer sync()
			return runFit(cmd, cfg, log, args, cmd.OutOrStdout())
		},
	}
	addFitFlags(cmd.Flags())
	cmd.Flags().IntP("workers", "j", 0, "fits to run at the same time (0: all CPUs)")
	return cmd
}

func runFit(cmd *cobra.Command, cfg *Config, log logr.Logger, files []string, out io.Writer) error {
	o := cfg.options()
	o.Logger = log
	reports := make([]*eosio.FitReport, len(files))
	datasets := make([]*eosio.Dataset, 0, len(files))
	index := make([]int, 0, len(files)) //report index for each dataset read
	for i, name := range files {
		d, err := eosio.ReadFile(name)
		if err != nil {
			log.Info("unable to read curve", "file", name, "err", err.Error())
			reports[i] = eosio.NewFitReport(name, nil, nil, err)
			continue
		}
		datasets = append(datasets, d)
		index = append(index, i)
	}
	if cfg.Sweep {
		guesses, err := eos.B01Guesses(cfg.SweepFrom, cfg.SweepTo, cfg.SweepStep)
		if err != nil {
			return err
		}
		for j, d := range datasets {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			r, err := eos.FitB01Sweep(d.Samples, guesses, o)
			reports[index[j]] = eosio.NewFitReport(files[index[j]], d, r, err)
		}
	} else {
		curves := make([]eos.Samples, len(datasets))
		for j, d := range datasets {
			curves[j] = d.Samples
		}
		for _, b := range eos.FitAll(cmd.Context(), curves, o, cfg.Workers) {
			reports[index[b.Index]] = eosio.NewFitReport(files[index[b.Index]], datasets[b.Index], b.Result, b.Err)
		}
	}
	failed := 0
	for _, r := range reports {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		log.Info("some curves could not be fitted", "failed", failed, "total", len(files))
	}
	if err := eosio.WriteYAML(out, reports); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
