/*
 * parameters.go, part of gobound.
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

//CrystalParameter names a parameter of a crystal model. Each model
//supports only some of them.
type CrystalParameter int

//Zinc-blende: Luttinger parameters and spin-orbit splitting (meV).
//Wurtzite: Rashba-Sheka-Pikus parameters, crystal field and spin-orbit splittings (meV).
//Generalized wurtzite: per-band parameters (A1..A3 are shared with wurtzite), crystal
//field and spin-orbit splittings (meV).
const (
	G1 CrystalParameter = iota
	G2
	G3
	D0
	A1
	A2
	A3
	A4
	A5
	A6
	Delta1
	Delta2
	Delta3
	B1
	B2
	B3
	C1
	C2
	C3
	D1
	D2
	D3
	Delta1C
	Delta2C
	Delta1SO
	Delta2SO
	Delta3SO
)

var crystalNames = [...]string{"G1", "G2", "G3", "D0", "A1", "A2", "A3", "A4", "A5", "A6",
	"Delta1", "Delta2", "Delta3", "B1", "B2", "B3", "C1", "C2", "C3", "D1", "D2", "D3",
	"Delta1C", "Delta2C", "Delta1SO", "Delta2SO", "Delta3SO"}

func (p CrystalParameter) String() string {
	if p < 0 || int(p) >= len(crystalNames) {
		return fmt.Sprintf("CrystalParameter(%d)", int(p))
	}
	return crystalNames[p]
}

//ImpurityParameter names a parameter of an impurity model.
type ImpurityParameter int

//Wang-Chen: well depth (meV), screening lengths and well radius (Bohr).
const (
	V ImpurityParameter = iota
	Ra
	Rb
	R1
)

var impurityNames = [...]string{"V", "Ra", "Rb", "R1"}

func (p ImpurityParameter) String() string {
	if p < 0 || int(p) >= len(impurityNames) {
		return fmt.Sprintf("ImpurityParameter(%d)", int(p))
	}
	return impurityNames[p]
}
