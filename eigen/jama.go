/*
 * jama.go, part of gobound.
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

package eigen

import (
	"github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/mat"
)

//Jama solves the problem with the pure-Go JAMA routines of go.matrix.
//It is slower than Gonum, but has no dependencies on LAPACK-like code.
type Jama struct {
	//Largest condition number accepted for the overlap matrix. 0 means DefaultMaxCond.
	MaxCond float64
}

func (J Jama) maxCond() float64 {
	if J.MaxCond <= 0 {
		return DefaultMaxCond
	}
	return J.MaxCond
}

//sym2DM copies a symmetric matrix into a go.matrix DenseMatrix.
func sym2DM(s *mat.SymDense) *matrix.DenseMatrix {
	n := s.SymmetricDim()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = s.At(i, j)
		}
	}
	return matrix.MakeDenseMatrix(data, n, n)
}

//GenHermitian returns the eigenvalues of H x = E S x in ascending order.
func (J Jama) GenHermitian(H, S mat.CMatrix) ([]float64, error) {
	checkDims(H, S)
	L, err := sym2DM(embed(S)).Cholesky()
	if err != nil {
		return nil, degenerate("Jama.GenHermitian", "%s", err.Error())
	}
	n := L.Rows()
	for i := 0; i < n; i++ {
		if d := L.Get(i, i); !(d > 0) {
			return nil, degenerate("Jama.GenHermitian", "non-positive pivot %g", d)
		}
	}
	_, SD, err := sym2DM(embed(S)).Eigen()
	if err != nil {
		return nil, Error{"Eigendecomposition of the overlap matrix failed: " + err.Error(), []string{"Jama.GenHermitian"}, true, ErrNoConvergence}
	}
	if c := condition(diagonal(SD)); c > J.maxCond() {
		return nil, degenerate("Jama.GenHermitian", "condition number %g larger than %g", c, J.maxCond())
	}
	Li, err := L.Inverse()
	if err != nil {
		return nil, degenerate("Jama.GenHermitian", "%s", err.Error())
	}
	C := matrix.Product(Li, sym2DM(embed(H)), Li.Transpose())
	//go.matrix only uses the symmetric algorithm for exactly symmetric matrices.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (C.Get(i, j) + C.Get(j, i)) / 2
			C.Set(i, j, v)
			C.Set(j, i, v)
		}
	}
	_, D, err := C.Eigen()
	if err != nil {
		return nil, Error{"Eigendecomposition failed: " + err.Error(), []string{"Jama.GenHermitian"}, true, ErrNoConvergence}
	}
	return halve(diagonal(D)), nil
}

//diagonal returns the diagonal of a square go.matrix matrix.
func diagonal(D *matrix.DenseMatrix) []float64 {
	vals := make([]float64, D.Rows())
	for i := range vals {
		vals[i] = D.Get(i, i)
	}
	return vals
}
