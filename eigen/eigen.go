/*
 * eigen.go, part of gobound.
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

//Package eigen solves the generalized Hermitian eigenproblem H x = E S x,
//with S positive definite, for eigenvalues only.
//
//The solvers work on real matrices: the nxn Hermitian matrix A+iB is embedded
//as the 2nx2n real symmetric matrix [[A, -B], [B, A]], which has the same
//eigenvalues, each one twice. The embedded S is Cholesky-factorized, S=LL^T,
//and the symmetric matrix L^-1 H L^-T is diagonalized.
package eigen

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//DefaultMaxCond is the largest condition number accepted for the overlap
//matrix, if the solver doesn't set one.
const DefaultMaxCond = 1e12

//Error kinds.
var (
	ErrDegenerateBasis = errors.New("gobound: degenerate basis")
	ErrNoConvergence   = errors.New("gobound: eigensolver did not converge")
)

//Solver solves the generalized Hermitian eigenproblem.
type Solver interface {
	//GenHermitian returns the eigenvalues of H x = E S x in ascending order.
	//H and S must be square, of the same size, and Hermitian (only their
	//upper triangles are used). S must be positive definite, or an error
	//with the kind ErrDegenerateBasis is returned.
	GenHermitian(H, S mat.CMatrix) ([]float64, error)
}

//checkDims returns the dimension of H and S, and panics if they are not
//square matrices of the same size.
func checkDims(H, S mat.CMatrix) int {
	hr, hc := H.Dims()
	sr, sc := S.Dims()
	if hr != hc || sr != sc || hr != sr {
		panic(ErrShape)
	}
	return hr
}

//embed returns the real symmetric embedding of the Hermitian matrix c.
//Only the upper triangle of c is read.
func embed(c mat.CMatrix) *mat.SymDense {
	n, _ := c.Dims()
	ret := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := c.At(i, j)
			re, im := real(v), imag(v)
			ret.SetSym(i, j, re)
			ret.SetSym(i+n, j+n, re)
			ret.SetSym(i, j+n, -im)
			ret.SetSym(j, i+n, im) //-B[j][i]
		}
	}
	return ret
}

//condition returns the 2-norm condition number of a symmetric matrix with
//the eigenvalues vals, or +Inf if the matrix is not positive definite.
//Both solvers accept or reject the overlap matrix with this number.
func condition(vals []float64) float64 {
	lo, hi := floats.Min(vals), floats.Max(vals)
	if !(lo > 0) {
		return math.Inf(1)
	}
	return hi / lo
}

//halve sorts the eigenvalues of an embedded matrix and returns one of each pair.
func halve(vals []float64) []float64 {
	sort.Float64s(vals)
	ret := make([]float64, len(vals)/2)
	for i := range ret {
		ret[i] = vals[2*i]
	}
	return ret
}

//Error is the error type for the eigen package.
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

//Unwrap returns the kind of the error.
func (err Error) Unwrap() error { return err.kind }

func degenerate(caller, format string, a ...interface{}) Error {
	return Error{fmt.Sprintf("Overlap matrix is not positive definite, the basis functions are linearly dependent: "+format, a...), []string{caller}, true, ErrDegenerateBasis}
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrShape = PanicMsg("gobound/eigen: Dimension mismatch")
