/*
 * gonum.go, part of gobound.
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

import "gonum.org/v1/gonum/mat"

//Gonum solves the problem with the LAPACK-based routines of gonum/mat.
type Gonum struct {
	//Largest condition number accepted for the overlap matrix. 0 means DefaultMaxCond.
	MaxCond float64
}

func (G Gonum) maxCond() float64 {
	if G.MaxCond <= 0 {
		return DefaultMaxCond
	}
	return G.MaxCond
}

//GenHermitian returns the eigenvalues of H x = E S x in ascending order.
func (G Gonum) GenHermitian(H, S mat.CMatrix) ([]float64, error) {
	checkDims(H, S)
	Se := embed(S)
	var chol mat.Cholesky
	if ok := chol.Factorize(Se); !ok {
		return nil, degenerate("Gonum.GenHermitian", "Cholesky factorization failed")
	}
	var ses mat.EigenSym
	if ok := ses.Factorize(Se, false); !ok {
		return nil, Error{"Eigendecomposition of the overlap matrix failed", []string{"Gonum.GenHermitian"}, true, ErrNoConvergence}
	}
	if c := condition(ses.Values(nil)); c > G.maxCond() {
		return nil, degenerate("Gonum.GenHermitian", "condition number %g larger than %g", c, G.maxCond())
	}
	var L, Li mat.TriDense
	chol.LTo(&L)
	if err := Li.InverseTri(&L); err != nil {
		return nil, degenerate("Gonum.GenHermitian", "%s", err.Error())
	}
	var tmp, C mat.Dense
	tmp.Mul(&Li, embed(H))
	C.Mul(&tmp, Li.T())
	n, _ := C.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (C.At(i, j)+C.At(j, i))/2)
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, false); !ok {
		return nil, Error{"Symmetric eigendecomposition failed", []string{"Gonum.GenHermitian"}, true, ErrNoConvergence}
	}
	return halve(es.Values(nil)), nil
}
