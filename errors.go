/*
 * errors.go, part of gobound.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package bound

import (
	"errors"

	"github.com/rmera/gobound/basis"
	"github.com/rmera/gobound/eigen"
	"github.com/rmera/gobound/term"
)

//Error kinds, to be checked with errors.Is. The ones defined in other
//gobound packages are re-exported here.
var (
	ErrInvalidRange         = basis.ErrInvalidRange
	ErrUnsupportedParameter = term.ErrUnsupportedParameter
	ErrDegenerateBasis      = eigen.ErrDegenerateBasis
	ErrNoConvergence        = eigen.ErrNoConvergence
	ErrIndexOutOfRange      = errors.New("gobound: eigenvalue index out of range")
	ErrNonHermitian         = errors.New("gobound: matrix is not Hermitian")
	ErrNilTerm              = errors.New("gobound: nil term")
)

//Error is the error type for the bound package.
type Error struct {
	message  string
	deco     []string
	critical bool
	kind     error
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
//Critical errors come from the matrices themselves, and won't go away
//by asking again with the same parameters.
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error.
func (err Error) Unwrap() error { return err.kind }

//errDecorate adds the caller's name to the decoration of err if err is
//a bound.Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrShape = PanicMsg("gobound: Dimension mismatch between term matrices")
