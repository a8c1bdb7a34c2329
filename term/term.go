/*
 * term.go, part of gobound.
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

//Package term builds the matrices of the terms that make up the
//Hamiltonian of an impurity in a crystal. A term is a model, which
//knows what one pair of basis functions contributes, and the shared
//constants. The assembly of the full matrix over all the pairs of basis
//scales is done here, and is the same for every model.
package term

import (
	"fmt"
	"log"
	"math"

	"github.com/rmera/gobound/basis"
	"gonum.org/v1/gonum/mat"
)

//Constants are shared by all the terms in one Hamiltonian.
type Constants struct {
	//Inverse effective Bohr radius, in units of 1/Bohr radius.
	//The crystal term calculates it, the Hamiltonian copies it to the other terms.
	InvRadius float64
	//Dielectric constant.
	Dielectric float64
	//Number of spinor components, i.e. the dimension of each block.
	Components int
}

//Decay returns the decay rate, in 1/Bohr, of the basis function with the scale a.
func (C Constants) Decay(a float64) float64 {
	return a * C.InvRadius
}

//DefaultConstants returns the constants given to impurity and overlap terms
//until they are attached to a Hamiltonian.
func DefaultConstants() Constants {
	return Constants{InvRadius: 1, Dielectric: 1, Components: 1}
}

//Model is implemented by all the term variants.
type Model interface {
	//Block returns the C.Components x C.Components block for the basis
	//functions with the scales a1 and a2 (in multiples of C.InvRadius).
	Block(C Constants, a1, a2 float64) *mat.CDense
}

//InverseRadiusHook is implemented by models that need to recompute something
//when the inverse radius changes. It is called before the new value is stored.
type InverseRadiusHook interface {
	BeforeInverseRadius(r float64)
}

//DielectricHook is implemented by models that need to recompute something
//when the dielectric constant changes. It is called before the new value is stored.
type DielectricHook interface {
	BeforeDielectric(k float64)
}

//Releaser is implemented by models that own resources, such as other models.
type Releaser interface {
	Release()
}

//Term is the part common to all the terms. It should not be used directly,
//but through the Crystal, Impurity and Overlap types.
type Term struct {
	c        Constants
	model    Model
	owner    func() error
	released bool
}

func newTerm(m Model, C Constants) Term {
	if m == nil {
		panic(ErrNilModel)
	}
	T := Term{model: m}
	T.SetConstants(C)
	return T
}

//Model returns the model of the term.
func (T *Term) Model() Model {
	return T.model
}

//Constants returns a copy of the constants of the term.
func (T *Term) Constants() Constants {
	return T.c
}

//Dim returns the dimension of the blocks of the term.
func (T *Term) Dim() int {
	return T.c.Components
}

//InverseRadius returns the inverse effective Bohr radius, in 1/Bohr.
func (T *Term) InverseRadius() float64 {
	return T.c.InvRadius
}

//SetInverseRadius sets the inverse effective Bohr radius. r must be positive.
//If the owner rejects the change, the old value is restored and the owner's
//error is returned.
func (T *Term) SetInverseRadius(r float64) error {
	if !positive(r) {
		return Error{fmt.Sprintf("Inverse radius must be positive, got %g", r), []string{"SetInverseRadius"}, false, ErrInvalidRange}
	}
	old := T.c.InvRadius
	T.setInverseRadius(r)
	if err := T.touch(); err != nil {
		T.setInverseRadius(old)
		return errDecorate(err, "SetInverseRadius")
	}
	return nil
}

func (T *Term) setInverseRadius(r float64) {
	if h, ok := T.model.(InverseRadiusHook); ok {
		h.BeforeInverseRadius(r)
	}
	T.c.InvRadius = r
}

//Dielectric returns the dielectric constant.
func (T *Term) Dielectric() float64 {
	return T.c.Dielectric
}

//SetDielectric sets the dielectric constant. k must be positive.
//If the owner rejects the change, the old value is restored and the owner's
//error is returned.
func (T *Term) SetDielectric(k float64) error {
	if !positive(k) {
		return Error{fmt.Sprintf("Dielectric constant must be positive, got %g", k), []string{"SetDielectric"}, false, ErrInvalidRange}
	}
	old := T.c.Dielectric
	T.setDielectric(k)
	if err := T.touch(); err != nil {
		T.setDielectric(old)
		return errDecorate(err, "SetDielectric")
	}
	return nil
}

func (T *Term) setDielectric(k float64) {
	if h, ok := T.model.(DielectricHook); ok {
		h.BeforeDielectric(k)
	}
	T.c.Dielectric = k
}

//SetConstants copies C into the term. Hooks run only for the values
//that change. The owner is not notified, as this is what the owner uses
//to keep its terms in sync.
func (T *Term) SetConstants(C Constants) {
	if C.InvRadius != T.c.InvRadius {
		T.setInverseRadius(C.InvRadius)
	}
	if C.Dielectric != T.c.Dielectric {
		T.setDielectric(C.Dielectric)
	}
	T.c.Components = C.Components
}

//SetOwner sets a function to be called every time a change in the term
//changes its matrix. An error from f rejects a change of the inverse radius
//or the dielectric constant. A nil f detaches the term from its owner.
func (T *Term) SetOwner(f func() error) {
	T.owner = f
}

func (T *Term) touch() error {
	if T.owner != nil {
		return T.owner()
	}
	return nil
}

//Matrix builds the matrix of the term in a basis of num functions with scales
//between min and max, in a geometric progression. Block (i,j) of the matrix is
//the model's block for the scales i and j. The matrix belongs to the caller.
func (T *Term) Matrix(min, max float64, num int) (*mat.CDense, error) {
	if T.released {
		panic(ErrReleased)
	}
	scales, err := basis.Scales(min, max, num)
	if err != nil {
		return nil, errDecorate(err, "Matrix")
	}
	d := T.Dim()
	M := mat.NewCDense(num*d, num*d, nil)
	for i, a1 := range scales {
		for j, a2 := range scales {
			setBlock(M, i*d, j*d, T.model.Block(T.c, a1, a2), d)
		}
	}
	return M, nil
}

//setBlock copies the dxd matrix b into M, starting at row r and column c.
func setBlock(M *mat.CDense, r, c int, b mat.CMatrix, d int) {
	br, bc := b.Dims()
	if br != d || bc != d {
		panic(ErrBlockShape)
	}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			M.Set(r+i, c+j, b.At(i, j))
		}
	}
}

//Release runs the clean-up of the model, if any, and detaches the term from
//its owner. A released term can't build matrices.
func (T *Term) Release() {
	if T.released {
		log.Printf("gobound/term: Term released more than once, ignored")
		return
	}
	if r, ok := T.model.(Releaser); ok {
		r.Release()
	}
	T.owner = nil
	T.released = true
}

//Released returns true if the term has been released.
func (T *Term) Released() bool {
	return T.released
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
