/*
 * conversion.go, part of gobound.
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

package term

//This provides the conversion factors used by the terms and the
//Hamiltonian. Terms work in Rydberg atomic units: lengths in Bohr
//radii, energies in Rydberg, and hbar^2/2m0=1, e^2=2.
//Band parameters and potential depths are given in meV.

//Conversions
const (
	Ry2MeV = 13605.693122994 //Rydberg to meV
	MeV2Ry = 1 / 13605.693122994
)
