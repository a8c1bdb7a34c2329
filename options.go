/*
 * options.go, part of gobound.
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
	"github.com/rmera/gobound/eigen"
	"github.com/rmera/gobound/term"
)

//Options contains the settings of a Hamiltonian that are not physical parameters.
type Options struct {
	basisMin   float64 //smallest basis scale, in multiples of the inverse effective Bohr radius
	basisMax   float64 //largest basis scale
	basisNum   int     //number of scales
	solver     eigen.Solver
	tolerance  float64 //factor for NonHermiticity
	conversion float64 //from Rydberg to the reported energy units
}

//DefaultOptions returns reasonable options: 10 basis scales between 0.1 and 10,
//the gonum solver, and eigenvalues reported in meV.
func DefaultOptions() *Options {
	r := new(Options)
	r.basisMin = 0.1
	r.basisMax = 10
	r.basisNum = 10
	r.solver = eigen.Gonum{}
	r.tolerance = DefaultTolerance
	r.conversion = term.Ry2MeV
	return r
}

//Returns the smallest basis scale, and sets it to a new value, if given.
func (O *Options) BasisMin(v ...float64) float64 {
	if len(v) > 0 {
		O.basisMin = v[0]
	}
	return O.basisMin
}

//Returns the largest basis scale, and sets it to a new value, if given.
func (O *Options) BasisMax(v ...float64) float64 {
	if len(v) > 0 {
		O.basisMax = v[0]
	}
	return O.basisMax
}

//Returns the number of basis scales, and sets it to a new value, if given.
func (O *Options) BasisNum(n ...int) int {
	if len(n) > 0 {
		O.basisNum = n[0]
	}
	return O.basisNum
}

//Returns the eigensolver, and sets it to a new value, if a non-nil one is given.
func (O *Options) Solver(s ...eigen.Solver) eigen.Solver {
	if len(s) > 0 && s[0] != nil {
		O.solver = s[0]
	}
	return O.solver
}

//Returns the factor used to obtain the hermiticity tolerance, and sets it
//to a new value, if a positive one is given.
func (O *Options) Tolerance(f ...float64) float64 {
	if len(f) > 0 && f[0] > 0 {
		O.tolerance = f[0]
	}
	return O.tolerance
}

//Returns the factor that converts eigenvalues from Rydberg to the reported units,
//and sets it to a new value, if a positive one is given.
func (O *Options) Conversion(f ...float64) float64 {
	if len(f) > 0 && f[0] > 0 {
		O.conversion = f[0]
	}
	return O.conversion
}
