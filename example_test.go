/*
 * example_test.go, part of gobound.
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

package bound_test

import (
	"fmt"
	"math"

	bound "github.com/rmera/gobound"
	"github.com/rmera/gobound/exp"
	"github.com/rmera/gobound/term"
)

//A hole with the free electron mass bound to a Coulomb impurity in vacuum is
//the hydrogen atom. A single basis function at the Bohr radius is the exact 1s orbital.
func ExampleHamiltonian_Eval() {
	zb, err := exp.NewZincBlende(1, 1, 1, 0, 1)
	if err != nil {
		panic(err)
	}
	O := bound.DefaultOptions()
	O.BasisMin(1)
	O.BasisMax(1)
	O.BasisNum(1)
	H, err := bound.New(zb, exp.NewCoulomb(), exp.NewOverlap(), O)
	if err != nil {
		panic(err)
	}
	E0, err := H.Eval(0, false)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d states, ground state %.6f Ry\n", H.NumEvals(), E0)
	E0, _ = H.Eval(0)
	fmt.Println(math.Abs(E0+term.Ry2MeV) < 1e-6)
	// Output:
	// 6 states, ground state -1.000000 Ry
	// true
}
