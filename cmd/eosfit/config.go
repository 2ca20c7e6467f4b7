package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	eos "github.com/rmera/goeos"
)

//Config holds every setting of eosfit. Values come, in increasing priority, from the defaults,
//a TOML config file (--config), EOSFIT_* environment variables, and the command line.
type Config struct {
	Verbose        bool    `mapstructure:"verbose"`
	Workers        int     `mapstructure:"workers"`
	MaxIterations  int     `mapstructure:"max-iterations"`
	RangeTolerance float64 `mapstructure:"range-tolerance"`

	Sweep     bool    `mapstructure:"sweep"`
	SweepFrom float64 `mapstructure:"sweep-from"`
	SweepTo   float64 `mapstructure:"sweep-to"`
	SweepStep float64 `mapstructure:"sweep-step"`
	SweepB0   float64 `mapstructure:"sweep-b0"`

	NAtoms   int     `mapstructure:"natoms"`
	Step     float64 `mapstructure:"step"`
	Relative bool    `mapstructure:"relative"`

	VMin   float64 `mapstructure:"vmin"`
	VMax   float64 `mapstructure:"vmax"`
	Points int     `mapstructure:"points"`
	Volume float64 `mapstructure:"volume"`
}

func setDefaults(v *viper.Viper) {
	d := eos.DefaultOptions()
	v.SetDefault("workers", 0)
	v.SetDefault("max-iterations", d.MaxIterations)
	v.SetDefault("range-tolerance", d.RangeTolerance)
	v.SetDefault("sweep-from", 0.1)
	v.SetDefault("sweep-to", 10.0)
	v.SetDefault("sweep-step", 0.1)
	v.SetDefault("sweep-b0", d.SweepB0)
	v.SetDefault("step", 0.01)
	v.SetDefault("vmin", eos.VolumeScaleMin)
	v.SetDefault("vmax", eos.VolumeScaleMax)
	v.SetDefault("points", eos.DefaultPoints)
}

//addFitFlags adds the flags that control the fitter.
func addFitFlags(fs *pflag.FlagSet) {
	fs.Int("max-iterations", eos.DefaultOptions().MaxIterations, "iteration budget of the Levenberg-Marquardt solver")
	fs.Bool("sweep", false, "fit with a sweep of B0' starting values and keep the one with the smallest standard errors")
	fs.Float64("sweep-from", 0.1, "first B0' starting value of the sweep")
	fs.Float64("sweep-to", 10, "last B0' starting value of the sweep")
	fs.Float64("sweep-step", 0.1, "step between B0' starting values of the sweep")
	fs.Float64("sweep-b0", eos.DefaultOptions().SweepB0, "B0 starting value for the sweep")
}

//loadConfig merges defaults, the config file, the environment and the flags of cmd.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("EOSFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if name, _ := cmd.Flags().GetString("config"); name != "" {
		v.SetConfigFile(name)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", name, err)
		}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

//options returns the library options for cfg.
func (cfg *Config) options() *eos.Options {
	o := eos.DefaultOptions()
	if cfg.MaxIterations > 0 {
		o.MaxIterations = cfg.MaxIterations
	}
	if cfg.RangeTolerance > 0 {
		o.RangeTolerance = cfg.RangeTolerance
	}
	if cfg.SweepB0 != 0 {
		o.SweepB0 = cfg.SweepB0
	}
	return o
}
