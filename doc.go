/*
 * doc.go, part of gobound.
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

/*Package bound is the main package of the goBound library. It calculates the bound states of
a carrier (a hole, in the models provided) around an impurity in a semiconductor, in the
effective mass approximation, by variational expansion in a basis of Slater functions.



	**goBound Capabilities**


    Builds the Hamiltonian as the sum of a crystal term, with the kinetic energy and band
	structure of the host, and an impurity term, with the potential of the impurity.

    Crystal terms for zinc-blende and wurtzite hosts, the latter with the Rashba-Sheka-Pikus
	parameters or with a general set of band parameters (package exp).

    Impurity terms for the screened Coulomb potential, the Wang-Chen potential with
	a position-dependent dielectric function and a central-cell well, and the Lam-Cohen-Zunger
	pseudopotential (package exp). New terms only need to give the matrix blocks between two
	basis functions (package term).

    Solves the generalized Hermitian eigenproblem with gonum/mat or, alternatively, with
	the pure-Go JAMA routines of go.matrix (package eigen).

    Keeps the eigenvalues until a parameter, the basis or a term changes.



All the calculations are done in Rydberg atomic units, with lengths in Bohr radii.
Band parameters and potential depths are given in meV, and the eigenvalues are
reported in meV, unless asked otherwise. Energies are hole energies, measured from
the top of the valence band.

A typical use:

	zb, err := exp.NewZincBlende(6.85, 2.1, 2.9, 341, 12.9)
	if err != nil {
		panic(err)
	}
	H, err := bound.New(zb, exp.NewCoulomb(), exp.NewOverlap())
	if err != nil {
		panic(err)
	}
	E0, err := H.Eval(0) //ground state, meV
*/
package bound
