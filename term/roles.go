/*
 * roles.go, part of gobound.
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

package term

import "fmt"

//CrystalModel is a model for the crystal term. The crystal is the source
//of the constants shared by all the terms of a Hamiltonian.
type CrystalModel interface {
	Model
	//Components returns the dimension of the blocks.
	Components() int
	//InverseRadius returns the inverse effective Bohr radius, in 1/Bohr,
	//for the dielectric constant k.
	InverseRadius(k float64) float64
}

//CrystalParameterizer is implemented by crystal models with named parameters.
//The boolean is false if the model doesn't have the parameter p.
type CrystalParameterizer interface {
	CrystalParameter(p CrystalParameter) (float64, bool)
	SetCrystalParameter(p CrystalParameter, v float64) bool
}

//ImpurityParameterizer is implemented by impurity models with named parameters.
//The boolean is false if the model doesn't have the parameter p.
type ImpurityParameterizer interface {
	ImpurityParameter(p ImpurityParameter) (float64, bool)
	SetImpurityParameter(p ImpurityParameter, v float64) bool
}

//Crystal is the term with the kinetic energy and band structure of the host.
type Crystal struct {
	Term
}

//NewCrystal returns a crystal term for the model m and the dielectric constant k.
//The inverse radius is obtained from the model.
func NewCrystal(m CrystalModel, k float64) (*Crystal, error) {
	if m == nil {
		panic(ErrNilModel)
	}
	if !positive(k) {
		return nil, Error{fmt.Sprintf("Dielectric constant must be positive, got %g", k), []string{"NewCrystal"}, false, ErrInvalidRange}
	}
	d := m.Components()
	if d < 1 {
		return nil, Error{fmt.Sprintf("Model has %d components", d), []string{"NewCrystal"}, false, ErrInvalidRange}
	}
	r := m.InverseRadius(k)
	if !positive(r) {
		return nil, Error{fmt.Sprintf("Model gives an inverse radius of %g", r), []string{"NewCrystal"}, false, ErrInvalidRange}
	}
	return &Crystal{newTerm(m, Constants{InvRadius: r, Dielectric: k, Components: d})}, nil
}

//SetDielectric sets the dielectric constant, and recomputes the inverse radius.
func (C *Crystal) SetDielectric(k float64) error {
	if !positive(k) {
		return Error{fmt.Sprintf("Dielectric constant must be positive, got %g", k), []string{"Crystal.SetDielectric"}, false, ErrInvalidRange}
	}
	r := C.crystalModel().InverseRadius(k)
	if !positive(r) {
		return Error{fmt.Sprintf("Dielectric constant %g gives an inverse radius of %g", k, r), []string{"Crystal.SetDielectric"}, false, ErrInvalidRange}
	}
	C.setDielectric(k)
	C.setInverseRadius(r)
	return C.touch()
}

//Parameter returns the value of the parameter p.
func (C *Crystal) Parameter(p CrystalParameter) (float64, error) {
	m, ok := C.model.(CrystalParameterizer)
	if ok {
		if v, ok := m.CrystalParameter(p); ok {
			return v, nil
		}
	}
	return 0, Error{fmt.Sprintf("Crystal model %T has no parameter %s", C.model, p), []string{"Crystal.Parameter"}, false, ErrUnsupportedParameter}
}

//SetParameter sets the parameter p to v, and recomputes the inverse radius.
//If the new value gives an invalid inverse radius, the old value is restored
//and an error is returned.
func (C *Crystal) SetParameter(p CrystalParameter, v float64) error {
	old, err := C.Parameter(p)
	if err != nil {
		return errDecorate(err, "Crystal.SetParameter")
	}
	m := C.model.(CrystalParameterizer)
	m.SetCrystalParameter(p, v)
	r := C.crystalModel().InverseRadius(C.c.Dielectric)
	if !positive(r) {
		m.SetCrystalParameter(p, old)
		return Error{fmt.Sprintf("%s=%g gives an inverse radius of %g", p, v, r), []string{"Crystal.SetParameter"}, false, ErrInvalidRange}
	}
	if r != C.c.InvRadius {
		C.setInverseRadius(r)
	}
	return C.touch()
}

func (C *Crystal) crystalModel() CrystalModel {
	return C.model.(CrystalModel)
}

//Impurity is the term with the potential of the impurity.
type Impurity struct {
	Term
}

//NewImpurity returns an impurity term for the model m, with the default constants.
func NewImpurity(m Model) *Impurity {
	return &Impurity{newTerm(m, DefaultConstants())}
}

//Parameter returns the value of the parameter p.
func (I *Impurity) Parameter(p ImpurityParameter) (float64, error) {
	m, ok := I.model.(ImpurityParameterizer)
	if ok {
		if v, ok := m.ImpurityParameter(p); ok {
			return v, nil
		}
	}
	return 0, Error{fmt.Sprintf("Impurity model %T has no parameter %s", I.model, p), []string{"Impurity.Parameter"}, false, ErrUnsupportedParameter}
}

//SetParameter sets the parameter p to v.
func (I *Impurity) SetParameter(p ImpurityParameter, v float64) error {
	if _, err := I.Parameter(p); err != nil {
		return errDecorate(err, "Impurity.SetParameter")
	}
	I.model.(ImpurityParameterizer).SetImpurityParameter(p, v)
	return I.touch()
}

//Overlap is the term with the overlap between basis functions.
type Overlap struct {
	Term
}

//NewOverlap returns an overlap term for the model m, with the default constants.
func NewOverlap(m Model) *Overlap {
	return &Overlap{newTerm(m, DefaultConstants())}
}
