/*
 * impurity.go, part of gobound.
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

package exp

import (
	"github.com/rmera/gobound/basis"
	"github.com/rmera/gobound/term"
	"gonum.org/v1/gonum/mat"
)

//Coulomb is the screened Coulomb potential of a singly charged impurity,
//-2/(k r) Ry, attractive for the carrier.
type Coulomb struct {
	strength float64 //-2/k
}

//NewCoulomb returns a Coulomb impurity term.
func NewCoulomb() *term.Impurity {
	return term.NewImpurity(new(Coulomb))
}

func (P *Coulomb) BeforeDielectric(k float64) {
	P.strength = -2 / k
}

func (P *Coulomb) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	return diag(C.Components, P.strength*basis.Coulomb(C.Decay(a1), C.Decay(a2)))
}

//WangChen is a Coulomb potential with a position-dependent dielectric
//function and a central-cell square well:
//
//	U(r) = -(2/(k r)) [1 + (k-1)/2 (exp(-r/ra) + exp(-r/rb))] - V theta(r1-r)
//
//Close to the impurity the potential is unscreened, far from it, it is the
//screened Coulomb potential. V is in meV, ra, rb, r1 in Bohr.
type WangChen struct {
	v, ra, rb, r1 float64
	coul          float64 //-2/k
	scr           float64 //-(k-1)/k
}

//NewWangChen returns a Wang-Chen impurity term.
func NewWangChen(V, ra, rb, r1 float64) *term.Impurity {
	return term.NewImpurity(&WangChen{v: V, ra: ra, rb: rb, r1: r1})
}

func (P *WangChen) BeforeDielectric(k float64) {
	P.coul = -2 / k
	P.scr = -(k - 1) / k
}

//screening returns <a|exp(-r/l)/r|b>, or 0 for a non-positive length.
func screening(a, b, l float64) float64 {
	if l <= 0 {
		return 0
	}
	return basis.Yukawa(a, b, 1/l)
}

func (P *WangChen) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	a, b := C.Decay(a1), C.Decay(a2)
	v := P.coul * basis.Coulomb(a, b)
	v += P.scr * (screening(a, b, P.ra) + screening(a, b, P.rb))
	v -= P.v * term.MeV2Ry * basis.Well(a, b, P.r1)
	return diag(C.Components, v)
}

func (P *WangChen) param(p term.ImpurityParameter) *float64 {
	switch p {
	case term.V:
		return &P.v
	case term.Ra:
		return &P.ra
	case term.Rb:
		return &P.rb
	case term.R1:
		return &P.r1
	}
	return nil
}

func (P *WangChen) ImpurityParameter(p term.ImpurityParameter) (float64, bool) {
	if v := P.param(p); v != nil {
		return *v, true
	}
	return 0, false
}

func (P *WangChen) SetImpurityParameter(p term.ImpurityParameter, v float64) bool {
	if q := P.param(p); q != nil {
		*q = v
		return true
	}
	return false
}

//LCZAtom is the short-range part of a Lam-Cohen-Zunger atomic pseudopotential,
//i.e. the pseudopotential minus its -2Zc/r tail:
//
//	U(r) = (2Zc/r)(1 + C1 r) exp(-C2 r) + C3 exp(-C2 r)
//
//Zc is the core charge, C1 and C2 are in 1/Bohr and C3 in Ry.
type LCZAtom struct {
	Zc         int
	C1, C2, C3 float64
}

//NewLCZAtom returns an impurity term with the potential of a single LCZ atom.
func NewLCZAtom(atom LCZAtom) *term.Impurity {
	return term.NewImpurity(&atom)
}

func (A *LCZAtom) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	a, b := C.Decay(a1), C.Decay(a2)
	z := 2 * float64(A.Zc)
	v := z*basis.Yukawa(a, b, A.C2) + (z*A.C1+A.C3)*basis.Slater(a, b, A.C2)
	return diag(C.Components, v)
}

//LCZ is the Lam-Cohen-Zunger pseudopotential of a substitutional impurity.
//In the hole picture, replacing the host atom by the impurity atom adds the
//short-range potential of the host atom minus that of the impurity atom, and
//the screened Coulomb tail of the extra charge.
type LCZ struct {
	host     *LCZAtom
	impurity *LCZAtom
	coulomb  *Coulomb
}

//NewLCZ returns a LCZ impurity term for the impurity atom replacing the host atom.
func NewLCZ(host, impurity LCZAtom) *term.Impurity {
	return term.NewImpurity(NewLCZModel(host, impurity))
}

//NewLCZModel returns the LCZ model. It owns copies of the atoms given.
func NewLCZModel(host, impurity LCZAtom) *LCZ {
	return &LCZ{host: &host, impurity: &impurity, coulomb: new(Coulomb)}
}

//parts returns the sub-models in composition order.
func (P *LCZ) parts() []term.Model {
	return []term.Model{P.host, P.impurity, P.coulomb}
}

func (P *LCZ) BeforeInverseRadius(r float64) {
	for _, m := range P.parts() {
		if h, ok := m.(term.InverseRadiusHook); ok {
			h.BeforeInverseRadius(r)
		}
	}
}

func (P *LCZ) BeforeDielectric(k float64) {
	for _, m := range P.parts() {
		if h, ok := m.(term.DielectricHook); ok {
			h.BeforeDielectric(k)
		}
	}
}

//Block panics with term.ErrReleased after Release.
func (P *LCZ) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	if P.host == nil {
		panic(term.ErrReleased)
	}
	ret := P.host.Block(C, a1, a2)
	addScaled(ret, P.impurity.Block(C, a1, a2), -1)
	addScaled(ret, P.coulomb.Block(C, a1, a2), 1)
	return ret
}

//Release drops the sub-models, in composition order.
func (P *LCZ) Release() {
	for _, m := range P.parts() {
		if r, ok := m.(term.Releaser); ok {
			r.Release()
		}
	}
	P.host, P.impurity, P.coulomb = nil, nil, nil
}

//Overlap is the overlap between the basis functions. Spinor components
//are orthonormal, so the blocks are diagonal.
type Overlap struct{}

//NewOverlap returns an overlap term.
func NewOverlap() *term.Overlap {
	return term.NewOverlap(Overlap{})
}

func (Overlap) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	return diag(C.Components, basis.Overlap(C.Decay(a1), C.Decay(a2)))
}
