/*
 * integrals.go, part of gobound.
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

package basis

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

//The functions in this file return matrix elements between the normalized
//functions phi_a(r) = sqrt(a^3/pi) exp(-a r) and phi_b(r). a and b are decay
//rates in inverse Bohr radii, and must be positive.

//norm3 returns (ab)^(3/2), the product of the normalization constants times pi.
func norm3(a, b float64) float64 {
	return math.Pow(a*b, 1.5)
}

//Overlap returns <phi_a|phi_b>. It is 1 for a==b.
func Overlap(a, b float64) float64 {
	s := a + b
	return 8 * norm3(a, b) / (s * s * s)
}

//Kinetic returns <phi_a|-laplacian|phi_b>, in units of 1/Bohr^2
//(i.e. Rydberg, for a particle with the free electron mass).
func Kinetic(a, b float64) float64 {
	return a * b * Overlap(a, b)
}

//Coulomb returns <phi_a|1/r|phi_b>.
func Coulomb(a, b float64) float64 {
	return Yukawa(a, b, 0)
}

//Yukawa returns <phi_a|exp(-mu r)/r|phi_b>. mu must not be negative.
func Yukawa(a, b, mu float64) float64 {
	s := a + b + mu
	return 4 * norm3(a, b) / (s * s)
}

//Slater returns <phi_a|exp(-mu r)|phi_b>. mu must not be negative.
func Slater(a, b, mu float64) float64 {
	s := a + b + mu
	return 8 * norm3(a, b) / (s * s * s)
}

//Well returns <phi_a|theta(R-r)|phi_b>, the matrix element of a spherical
//square well of unit depth and radius R.
func Well(a, b, R float64) float64 {
	if R <= 0 {
		return 0
	}
	return Overlap(a, b) * mathext.GammaIncReg(3, (a+b)*R)
}
