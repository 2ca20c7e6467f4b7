package eosio

import (
	"io"

	eos "github.com/rmera/goeos"
	"gopkg.in/yaml.v3"
)

//FitReport summarizes the fit of one curve. If the fit failed, only Source, Label,
//Samples and Error are set.
type FitReport struct {
	Source  string     `yaml:"source"`
	Label   string     `yaml:"label,omitempty"`
	Samples int        `yaml:"samples"`
	Vmin    float64    `yaml:"vmin,omitempty"`
	Vmax    float64    `yaml:"vmax,omitempty"`
	Params  *ParamsOut `yaml:"params,omitempty"`
	StdErr  []float64  `yaml:"stderr,omitempty,flow"`
	Cost    float64    `yaml:"cost,omitempty"`
	Iter    int        `yaml:"iterations,omitempty"`
	Error   string     `yaml:"error,omitempty"`
}

//ParamsOut are Birch-Murnaghan parameters as reported, with the bulk modulus also in GPa.
type ParamsOut struct {
	E0    float64 `yaml:"e0"`
	V0    float64 `yaml:"v0"`
	B0    float64 `yaml:"b0"`
	B0GPa float64 `yaml:"b0_gpa"`
	B01   float64 `yaml:"b01"`
}

//NewParamsOut converts P, in eV and A^3, to a ParamsOut.
func NewParamsOut(P eos.Params) *ParamsOut {
	return &ParamsOut{E0: P.E0, V0: P.V0, B0: P.B0, B0GPa: P.B0 * eos.EVA3ToGPa, B01: P.B01}
}

//NewFitReport builds the report for the curve in D, read from source, with either the result r
//or the error err.
func NewFitReport(source string, D *Dataset, r *eos.FitResult, err error) *FitReport {
	rep := &FitReport{Source: source}
	if D != nil {
		rep.Label = D.Label
		rep.Samples = len(D.Samples)
		if len(D.Samples) > 0 {
			rep.Vmin, rep.Vmax = D.Samples.Range()
		}
	}
	if err != nil {
		rep.Error = err.Error()
		return rep
	}
	rep.Params = NewParamsOut(r.Params)
	rep.StdErr = r.StdErr()
	rep.Cost = r.Cost
	rep.Iter = r.Iterations
	return rep
}

//DeltaReport contains the result of the comparison of two curves.
type DeltaReport struct {
	A      string  `yaml:"a"`
	B      string  `yaml:"b"`
	NAtoms int     `yaml:"natoms"`
	Delta  float64 `yaml:"delta_mev_per_atom"`
	Error  string  `yaml:"error,omitempty"`
}

//WriteYAML writes v to w as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
