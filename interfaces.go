/*
 * interfaces.go, part of goEoS.
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

package eos

import (
	"fmt"
	"strings"
)

//Errors

// Error is the interface for errors that all packages in this module return. The Decorate method allows to add
// and retrieve info from the error without changing its type or wrapping it around something else.
// The kind of an Error can be checked with errors.Is against the Err* constants.
type Error interface {
	Error() string
	Kind() Kind
	Decorate(string) []string //Each call adds the caller (plus any extra info, as "FunctionName: info") and returns the resulting slice. An empty string only returns the slice.
}

// Kind classifies the failures of the fitting and comparison procedures.
// A Kind is itself an error, so it can be used as a target for errors.Is.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrInvalidInput       Kind = "invalid input"       //malformed sample set or argument
	ErrFitFailure         Kind = "fit failure"         //the solver did not converge, parameters unusable
	ErrMismatchedRange    Kind = "mismatched range"    //compared curves don't share volume boundaries
	ErrIntegrationFailure Kind = "integration failure" //quadrature for the Delta metric did not converge
)

type eosError struct {
	kind    Kind
	message string
	deco    []string
	cause   error
}

// NewError returns an Error of the given kind, decorated with the caller's name.
func NewError(kind Kind, message, caller string) Error {
	return &eosError{kind: kind, message: message, deco: []string{caller}}
}

// WrapError returns an Error of the given kind with err as its cause.
// errors.Is will match both kind and whatever err matches.
func WrapError(kind Kind, err error, caller string) Error {
	return &eosError{kind: kind, message: err.Error(), deco: []string{caller}, cause: err}
}

func (err *eosError) Error() string {
	return fmt.Sprintf("goEoS %s: %s", err.kind, err.message)
}

func (err *eosError) Kind() Kind { return err.kind }

func (err *eosError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *eosError) Unwrap() error { return err.cause }

func (err *eosError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == err.kind
}

// Trace returns the decoration of err, innermost caller first, joined by " <- ".
// It returns an empty string if err is not an Error.
func Trace(err error) string {
	e, ok := err.(Error)
	if !ok {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}

// errDecorate adds caller to the decoration of err if err is an Error,
// and returns err.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrParamLen  = PanicMsg("goEoS: a Birch-Murnaghan parameter slice must have 4 elements")
	ErrNilResult = PanicMsg("goEoS: nil fit result")
)
