/*
 * hamiltonian.go, part of gobound.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package bound

import (
	"fmt"
	"sort"

	"github.com/rmera/gobound/basis"
	"github.com/rmera/gobound/eigen"
	"github.com/rmera/gobound/term"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Hamiltonian builds the Hamiltonian and overlap matrices from its terms,
//and obtains their eigenvalues, which are kept until something that changes
//the matrices is modified.
//
//The Hamiltonian owns its terms: they are released when replaced, and should not
//be given to another Hamiltonian. The crystal term is the source of the inverse
//radius, dielectric constant and block dimension, which are copied to the other
//terms. A Hamiltonian is not safe for concurrent use.
type Hamiltonian struct {
	crystal  *term.Crystal
	impurity *term.Impurity
	overlap  *term.Overlap

	//basis granularity
	basisMin float64
	basisMax float64
	basisNum int

	solver     eigen.Solver
	tolerance  float64
	conversion float64

	//true if evals were obtained from the current parameters
	cleanEvals bool
	evals      []float64 //ascending, in Ry
}

//New returns a Hamiltonian with the given terms. Options are taken from opts, if given,
//and from DefaultOptions otherwise.
func New(c *term.Crystal, p *term.Impurity, o *term.Overlap, opts ...*Options) (*Hamiltonian, error) {
	if c == nil || p == nil || o == nil {
		return nil, Error{"A Hamiltonian needs crystal, impurity and overlap terms", []string{"New"}, false, ErrNilTerm}
	}
	O := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		O = opts[0]
	}
	H := &Hamiltonian{solver: O.Solver(), tolerance: O.Tolerance(), conversion: O.Conversion()}
	if err := H.SetGranularity(O.BasisMin(), O.BasisMax(), O.BasisNum()); err != nil {
		return nil, errDecorate(err, "New")
	}
	H.crystal = c
	c.SetOwner(H.crystalChanged)
	H.impurity = p
	H.follow(&p.Term)
	H.overlap = o
	H.follow(&o.Term)
	H.sync()
	H.touch()
	return H, nil
}

//touch marks the eigenvalues as stale.
func (H *Hamiltonian) touch() {
	H.cleanEvals = false
	H.evals = nil
}

func (H *Hamiltonian) crystalChanged() error {
	H.sync()
	H.touch()
	return nil
}

//follow attaches t, an impurity or overlap term, to the Hamiltonian.
func (H *Hamiltonian) follow(t *term.Term) {
	t.SetOwner(func() error { return H.pushConstants(t.Constants()) })
}

//pushConstants gives the crystal a dielectric constant or inverse radius set
//on another term, and copies the crystal's constants back to all the terms.
//If the crystal rejects the value, nothing changes.
func (H *Hamiltonian) pushConstants(C term.Constants) error {
	cc := H.crystal.Constants()
	var err error
	switch {
	case C.Dielectric != cc.Dielectric:
		err = H.crystal.SetDielectric(C.Dielectric)
	case C.InvRadius != cc.InvRadius:
		err = H.crystal.SetInverseRadius(C.InvRadius)
	}
	if err != nil {
		return errDecorate(err, "pushConstants")
	}
	return H.crystalChanged()
}

//sync copies the crystal's constants to the other terms.
func (H *Hamiltonian) sync() {
	C := H.crystal.Constants()
	H.impurity.SetConstants(C)
	H.overlap.SetConstants(C)
}

//SetCrystal releases the current crystal term and replaces it with c.
func (H *Hamiltonian) SetCrystal(c *term.Crystal) error {
	if c == nil {
		return Error{"Nil crystal term", []string{"SetCrystal"}, false, ErrNilTerm}
	}
	if c != H.crystal {
		H.crystal.Release()
		H.crystal = c
		c.SetOwner(H.crystalChanged)
	}
	H.crystalChanged()
	return nil
}

//SetImpurity releases the current impurity term and replaces it with p.
func (H *Hamiltonian) SetImpurity(p *term.Impurity) error {
	if p == nil {
		return Error{"Nil impurity term", []string{"SetImpurity"}, false, ErrNilTerm}
	}
	if p != H.impurity {
		H.impurity.Release()
		H.impurity = p
		H.follow(&p.Term)
	}
	H.sync()
	H.touch()
	return nil
}

//SetOverlap releases the current overlap term and replaces it with o.
func (H *Hamiltonian) SetOverlap(o *term.Overlap) error {
	if o == nil {
		return Error{"Nil overlap term", []string{"SetOverlap"}, false, ErrNilTerm}
	}
	if o != H.overlap {
		H.overlap.Release()
		H.overlap = o
		H.follow(&o.Term)
	}
	H.sync()
	H.touch()
	return nil
}

//Crystal returns the crystal term. Changes to it are seen by the Hamiltonian.
func (H *Hamiltonian) Crystal() *term.Crystal { return H.crystal }

//Impurity returns the impurity term. Changes to it are seen by the Hamiltonian.
func (H *Hamiltonian) Impurity() *term.Impurity { return H.impurity }

//Overlap returns the overlap term.
func (H *Hamiltonian) Overlap() *term.Overlap { return H.overlap }

//CrystalParameter returns the parameter p of the crystal term.
func (H *Hamiltonian) CrystalParameter(p term.CrystalParameter) (float64, error) {
	return H.crystal.Parameter(p)
}

//SetCrystalParameter sets the parameter p of the crystal term to v.
func (H *Hamiltonian) SetCrystalParameter(p term.CrystalParameter, v float64) error {
	return H.crystal.SetParameter(p, v)
}

//ImpurityParameter returns the parameter p of the impurity term.
func (H *Hamiltonian) ImpurityParameter(p term.ImpurityParameter) (float64, error) {
	return H.impurity.Parameter(p)
}

//SetImpurityParameter sets the parameter p of the impurity term to v.
func (H *Hamiltonian) SetImpurityParameter(p term.ImpurityParameter, v float64) error {
	return H.impurity.SetParameter(p, v)
}

//InverseRadius returns the inverse effective Bohr radius, in 1/Bohr.
func (H *Hamiltonian) InverseRadius() float64 { return H.crystal.InverseRadius() }

//SetInverseRadius overrides the inverse effective Bohr radius given by the crystal
//model, until the next change of the dielectric constant or a crystal parameter.
func (H *Hamiltonian) SetInverseRadius(r float64) error {
	return H.crystal.SetInverseRadius(r)
}

//Dielectric returns the dielectric constant.
func (H *Hamiltonian) Dielectric() float64 { return H.crystal.Dielectric() }

//SetDielectric sets the dielectric constant of all the terms.
func (H *Hamiltonian) SetDielectric(k float64) error {
	return H.crystal.SetDielectric(k)
}

//SetGranularity sets the basis: num scales between min and max, in multiples of the
//inverse effective Bohr radius, in a geometric progression. Nothing changes if the
//values are invalid.
func (H *Hamiltonian) SetGranularity(min, max float64, num int) error {
	if err := basis.Check(min, max, num); err != nil {
		return errDecorate(err, "SetGranularity")
	}
	H.basisMin, H.basisMax, H.basisNum = min, max, num
	H.touch()
	return nil
}

//Granularity returns the smallest and largest basis scales and their number.
func (H *Hamiltonian) Granularity() (min, max float64, num int) {
	return H.basisMin, H.basisMax, H.basisNum
}

//NumEvals returns the number of eigenvalues, without calculating them.
func (H *Hamiltonian) NumEvals() int {
	return H.basisNum * H.crystal.Dim()
}

//ConversionFactor returns the factor that converts Rydberg to the reported
//energy units (meV, by default).
func (H *Hamiltonian) ConversionFactor() float64 {
	return H.conversion
}

//Eval returns the n'th eigenvalue, in ascending order, recalculating all the
//eigenvalues if needed. The value is in Rydberg if convert is given and false,
//and converted (to meV by default) otherwise.
func (H *Hamiltonian) Eval(n int, convert ...bool) (float64, error) {
	if n < 0 || n >= H.NumEvals() {
		return 0, Error{fmt.Sprintf("Eigenvalue %d requested, but there are %d", n, H.NumEvals()), []string{"Eval"}, false, ErrIndexOutOfRange}
	}
	if err := H.genEvals(); err != nil {
		return 0, errDecorate(err, "Eval")
	}
	e := H.evals[n]
	if len(convert) == 0 || convert[0] {
		e *= H.conversion
	}
	return e, nil
}

//Evals returns a copy of all the eigenvalues, in the units given by convert,
//as for Eval.
func (H *Hamiltonian) Evals(convert ...bool) ([]float64, error) {
	if err := H.genEvals(); err != nil {
		return nil, errDecorate(err, "Evals")
	}
	ret := make([]float64, len(H.evals))
	copy(ret, H.evals)
	if len(convert) == 0 || convert[0] {
		floats.Scale(H.conversion, ret)
	}
	return ret, nil
}

//genEvals builds the matrices and obtains the eigenvalues, unless
//they are already up to date. On error, the eigenvalues stay stale.
func (H *Hamiltonian) genEvals() error {
	if H.cleanEvals {
		return nil
	}
	H.sync()
	Hc, err := H.crystal.Matrix(H.basisMin, H.basisMax, H.basisNum)
	if err != nil {
		return errDecorate(err, "genEvals")
	}
	Hi, err := H.impurity.Matrix(H.basisMin, H.basisMax, H.basisNum)
	if err != nil {
		return errDecorate(err, "genEvals")
	}
	S, err := H.overlap.Matrix(H.basisMin, H.basisMax, H.basisNum)
	if err != nil {
		return errDecorate(err, "genEvals")
	}
	add(Hc, Hi)
	if r, _ := S.Dims(); r != H.NumEvals() {
		panic(ErrShape)
	}
	if d := NonHermiticity(Hc, H.tolerance); d != 0 {
		return Error{fmt.Sprintf("Hamiltonian matrix is not Hermitian, relative deviation %g", d), []string{"genEvals"}, true, ErrNonHermitian}
	}
	if d := NonHermiticity(S, H.tolerance); d != 0 {
		return Error{fmt.Sprintf("Overlap matrix is not Hermitian, relative deviation %g", d), []string{"genEvals"}, true, ErrNonHermitian}
	}
	evals, err := H.solver.GenHermitian(Hc, S)
	if err != nil {
		return errDecorate(err, "genEvals")
	}
	if len(evals) != H.NumEvals() {
		panic(ErrShape)
	}
	sort.Float64s(evals)
	H.evals = evals
	H.cleanEvals = true
	return nil
}

//add puts A+B in A. It panics if their dimensions differ.
func add(A, B *mat.CDense) {
	ar, ac := A.Dims()
	br, bc := B.Dims()
	if ar != br || ac != bc {
		panic(ErrShape)
	}
	a, b := A.RawCMatrix(), B.RawCMatrix()
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			a.Data[i*a.Stride+j] += b.Data[i*b.Stride+j]
		}
	}
}

//Release releases the terms. The Hamiltonian can't be used afterwards.
func (H *Hamiltonian) Release() {
	H.crystal.Release()
	H.impurity.Release()
	H.overlap.Release()
	H.touch()
}
