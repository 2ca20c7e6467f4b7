package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	eos "github.com/rmera/goeos"
	"github.com/rmera/goeos/eosio"
)

func run(Te *testing.T, args ...string) (string, error) {
	var b bytes.Buffer
	root := newRootCmd()
	root.SetOut(&b)
	root.SetErr(&b)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return b.String(), err
}

func curveFile(Te *testing.T, dir, name string, P eos.Params) string {
	vols := floats.Span(make([]float64, 7), 0.94*P.V0, 1.06*P.V0)
	es, err := P.Energies(vols)
	require.NoError(Te, err)
	S, err := eos.NewSamples(vols, es)
	require.NoError(Te, err)
	path := filepath.Join(dir, name)
	require.NoError(Te, eosio.WriteFile(path, &eosio.Dataset{NAtoms: 2, Label: name, Samples: S}))
	return path
}

func TestFitCommand(Te *testing.T) {
	dir := Te.TempDir()
	a := curveFile(Te, dir, "a.dat", eos.Params{E0: -10, V0: 20, B0: 0.5, B01: 4})
	out, err := run(Te, "fit", a, filepath.Join(dir, "missing.dat"))
	require.NoError(Te, err)
	assert.Contains(Te, out, "v0:")
	assert.Contains(Te, out, "missing.dat")
	assert.Contains(Te, out, "error:")
}

func TestDeltaCommand(Te *testing.T) {
	dir := Te.TempDir()
	a := curveFile(Te, dir, "a.dat", eos.Params{E0: -10, V0: 20, B0: 0.5, B01: 4})
	b := curveFile(Te, dir, "b.dat.gz", eos.Params{E0: -9.998, V0: 20, B0: 0.5, B01: 4})
	out, err := run(Te, "delta", a, b)
	require.NoError(Te, err)
	var rep eosio.DeltaReport
	require.NoError(Te, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(Te, 2, rep.NAtoms)
	assert.InDelta(Te, 1.0, rep.Delta, 1e-6)
	assert.Empty(Te, rep.Error)
}

func TestScalesCommand(Te *testing.T) {
	out, err := run(Te, "scales", "--volume", "100")
	require.NoError(Te, err)
	assert.Contains(Te, out, "lattice_scales:")
	assert.Contains(Te, out, "volumes:")
	_, err = run(Te, "scales", "--volume", "100", "--cell", "1,0,0,0,1,0,0,0,1")
	assert.Error(Te, err)
}
