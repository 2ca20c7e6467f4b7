/*
 * eosio.go, part of goEoS.
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

/*
Package eosio reads and writes energy-volume files, and writes YAML reports of fits and comparisons.

An energy-volume file may only contain ASCII symbols. Empty lines and lines starting
with '#' are ignored. Lines containing a '=' are header lines, with a key=value pair.
Every other line contains exactly 2 numbers, a volume and the corresponding energy.
Header lines may appear anywhere, but by convention they go first.

The keys understood by this package are:

	natoms  the number of atoms in the cell.
	label   a name for the curve.
	units   ev-a3 (default), ry-bohr or ha-bohr: energies in eV, Ry or Ha, and volumes
	        in A^3 or bohr^3. Data are converted to eV and A^3 when read.

Other keys are kept in the Header map. Files with the extension .zst are compressed with
zstandard, and files with the extension .gz, with gzip.
*/
package eosio

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	eos "github.com/rmera/goeos"
)

//Units understood in the units header key.
const (
	UnitsEVA3   = "ev-a3"
	UnitsRyBohr = "ry-bohr"
	UnitsHaBohr = "ha-bohr"
)

//Dataset is the content of an energy-volume file.
type Dataset struct {
	Header  map[string]string //all header pairs, including the ones below
	NAtoms  int               //0 if not given
	Label   string
	Samples eos.Samples //sorted by volume, in eV and A^3
}

//Error is returned when a file is malformed.
type Error struct {
	message  string
	filename string
	line     int
	deco     []string
	cause    error //the I/O error behind this one, if any
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("energy-volume file %s, line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("energy-volume file %s: %s", err.filename, err.message)
}

//Decorate adds dec to the decoration of the error and returns the decoration.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Kind returns eos.ErrInvalidInput, since a malformed file can't give a valid curve.
func (err *Error) Kind() eos.Kind { return eos.ErrInvalidInput }

//Is allows matching the error with eos.ErrInvalidInput using errors.Is
func (err *Error) Is(target error) bool { return target == eos.ErrInvalidInput }

//Unwrap returns the I/O error that caused err, so it can be checked against fs.ErrNotExist
//and the like.
func (err *Error) Unwrap() error { return err.cause }

func newError(filename string, line int, caller, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), filename: filename, line: line, deco: []string{caller}}
}

func conversion(units string) (float64, float64, bool) {
	switch strings.ToLower(units) {
	case "", UnitsEVA3:
		return 1, 1, true
	case UnitsRyBohr:
		return eos.Bohr3ToA3, eos.Ry2EV, true
	case UnitsHaBohr:
		return eos.Bohr3ToA3, eos.Ha2EV, true
	}
	return 0, 0, false
}

//ReadFile reads the energy-volume file name, decompressing it if needed.
func ReadFile(name string) (*Dataset, error) {
	r, err := openSource(name)
	if err != nil {
		e := newError(name, 0, "ReadFile", "unable to open: %s", err)
		e.cause = err
		return nil, e
	}
	defer r.Close()
	return read(r, name)
}

//Read reads an uncompressed energy-volume file from r.
func Read(r io.Reader) (*Dataset, error) {
	return read(r, "<reader>")
}

func read(r io.Reader, name string) (*Dataset, error) {
	D := &Dataset{Header: map[string]string{}}
	var vols, energies []float64
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		if k, v, ok := strings.Cut(l, "="); ok {
			D.Header[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return nil, newError(name, line, "Read", "expected a volume and an energy, got %d fields", len(fields))
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, newError(name, line, "Read", "bad volume: %s", err)
		}
		e, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, newError(name, line, "Read", "bad energy: %s", err)
		}
		vols = append(vols, v)
		energies = append(energies, e)
	}
	if err := scanner.Err(); err != nil {
		e := newError(name, line, "Read", "%s", err)
		e.cause = err
		return nil, e
	}
	vconv, econv, ok := conversion(D.Header["units"])
	if !ok {
		return nil, newError(name, 0, "Read", "unknown units %q", D.Header["units"])
	}
	for i := range vols {
		vols[i] *= vconv
		energies[i] *= econv
	}
	D.Header["units"] = UnitsEVA3
	if n, ok := D.Header["natoms"]; ok {
		natoms, err := strconv.Atoi(n)
		if err != nil || natoms <= 0 {
			return nil, newError(name, 0, "Read", "natoms must be a positive integer, got %q", n)
		}
		D.NAtoms = natoms
	}
	D.Label = D.Header["label"]
	var err error
	D.Samples, err = eos.NewSamples(vols, energies)
	if err == nil {
		err = D.Samples.Validate(0)
	}
	if err != nil {
		return nil, newError(name, 0, "Read", "%s", err)
	}
	return D, nil
}

//WriteFile writes D to the file name, compressing it according to the extension.
func WriteFile(name string, D *Dataset) error {
	w, err := createSink(name)
	if err != nil {
		e := newError(name, 0, "WriteFile", "unable to create: %s", err)
		e.cause = err
		return e
	}
	if err := Write(w, D); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

//Write writes D, uncompressed, to w. The samples are written in eV and A^3.
func Write(w io.Writer, D *Dataset) error {
	bw := bufio.NewWriter(w)
	header := make(map[string]string, len(D.Header)+3)
	for k, v := range D.Header {
		header[k] = v
	}
	header["units"] = UnitsEVA3
	if D.NAtoms > 0 {
		header["natoms"] = strconv.Itoa(D.NAtoms)
	}
	if D.Label != "" {
		header["label"] = D.Label
	}
	keys := make([]string, 0, len(header))
	for k := range header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(bw, "%s=%s\n", k, header[k])
	}
	for _, s := range D.Samples {
		fmt.Fprintf(bw, "%s %s\n", strconv.FormatFloat(s.V, 'g', -1, 64), strconv.FormatFloat(s.E, 'g', -1, 64))
	}
	return bw.Flush()
}
