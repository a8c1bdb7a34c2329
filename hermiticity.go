/*
 * hermiticity.go, part of gobound.
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
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

//DefaultTolerance is the default factor for NonHermiticity.
const DefaultTolerance = 64

//epsilon is the machine epsilon for float64.
const epsilon = 1.0 / (1 << 52)

//Deviation returns max|m_ij - conj(m_ji)| divided by max|m_ij|, which is 0 for a Hermitian
//matrix, and for the zero matrix. m must be square.
func Deviation(m mat.CMatrix) float64 {
	r, c := m.Dims()
	if r != c {
		panic(ErrShape)
	}
	var dev, scale float64
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			v := m.At(i, j)
			scale = math.Max(scale, cmplx.Abs(v))
			if j >= i {
				dev = math.Max(dev, cmplx.Abs(v-cmplx.Conj(m.At(j, i))))
			}
		}
	}
	if scale == 0 {
		return 0
	}
	return dev / scale
}

//NonHermiticity measures the degree by which m fails to be Hermitian, and
//returns 0 if the failure is within the tolerance attributable to
//roundoff, factor*n*epsilon, for an nxn matrix. The default factor is
//DefaultTolerance. NaN elements always give a non-zero result.
func NonHermiticity(m mat.CMatrix, factor ...float64) float64 {
	f := float64(DefaultTolerance)
	if len(factor) > 0 && factor[0] > 0 {
		f = factor[0]
	}
	n, _ := m.Dims()
	d := Deviation(m)
	if d <= f*float64(n)*epsilon {
		return 0
	}
	return d
}
