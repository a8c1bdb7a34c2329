/*
 * basis.go, part of gobound.
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

//Package basis generates the decay-rate scales of the exponential basis
//and the closed-form radial integrals between its functions.
package basis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//ErrInvalidRange is the kind of the errors returned when basis bounds or
//sizes are out of range.
var ErrInvalidRange = errors.New("gobound: invalid range")

//Check returns an error if min, max and count can't define a scale
//progression, i.e. unless min>0, max>=min and count>=1.
func Check(min, max float64, count int) error {
	switch {
	case math.IsNaN(min) || math.IsNaN(max) || math.IsInf(max, 0):
		return Error{fmt.Sprintf("Non-finite scale bounds %g, %g", min, max), []string{"Check"}, false, ErrInvalidRange}
	case min <= 0:
		return Error{fmt.Sprintf("Minimum scale must be positive, got %g", min), []string{"Check"}, false, ErrInvalidRange}
	case max < min:
		return Error{fmt.Sprintf("Maximum scale %g smaller than minimum %g", max, min), []string{"Check"}, false, ErrInvalidRange}
	case count < 1:
		return Error{fmt.Sprintf("Need at least one basis scale, got %d", count), []string{"Check"}, false, ErrInvalidRange}
	}
	return nil
}

//Scales returns count scales between min and max (both included)
//in a geometric progression. With count==1 the only scale is min.
func Scales(min, max float64, count int) ([]float64, error) {
	if err := Check(min, max, count); err != nil {
		return nil, errDecorate(err, "Scales")
	}
	ret := make([]float64, count)
	if count == 1 {
		ret[0] = min
		return ret, nil
	}
	floats.LogSpan(ret, min, max)
	//exp(log(x)) is not always x.
	ret[0] = min
	ret[count-1] = max
	return ret, nil
}

//Error is the error type for the basis package.
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

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Unwrap returns the kind of the error, so it can be checked with errors.Is
func (err Error) Unwrap() error { return err.kind }

//errDecorate adds the caller's name to the decoration of err, if err
//is an Error. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.deco = e.Decorate(caller)
	return e
}
