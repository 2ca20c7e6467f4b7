/*
 * main.go, part of goEoS.
 *
 * Copyright 2026 Raul Mera Adasme <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//eosfit fits Birch-Murnaghan equations of state to energy-volume files and compares them
//with the Delta factor.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eosfit",
		Short: "Fit and compare equations of state of crystals",
		Long: `eosfit fits the third-order Birch-Murnaghan equation of state to energy-volume
files (see the eosio package for the format; .gz and .zst files are decompressed)
and compares pairs of curves with the Delta factor, in meV/atom.`,
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "TOML configuration file")
	pf.BoolP("verbose", "v", false, "log solver details")
	pf.Float64("range-tolerance", 1e-4, "largest difference allowed between the volume ranges of compared curves")
	root.AddCommand(newFitCmd(), newDeltaCmd(), newGridCmd(), newScalesCmd())
	return root
}

//newLogger returns a zap-backed logr.Logger writing to stderr. Verbose loggers
//show the solver iterations.
func newLogger(verbose bool) (logr.Logger, func(), error) {
	var z *zap.Logger
	var err error
	if verbose {
		z, err = zap.NewDevelopment() //debug level, which zapr uses for V(1)
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("building logger: %w", err)
	}
	return zapr.NewLogger(z), func() { _ = z.Sync() }, nil
}

//setup loads the configuration for cmd and builds its logger.
func setup(cmd *cobra.Command) (*Config, logr.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, logr.Discard(), func() {}, err
	}
	log, sync, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, logr.Discard(), func() {}, err
	}
	return cfg, log, sync, nil
}
