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

/*Package exp contains the terms for basis functions with radial exponential
decay, exp(-a r), with s-like envelopes.

Crystal terms are written in the hole picture, with the valence band maximum
at zero energy, so bound states have negative energies. With s-like envelopes
the angular averages <kx^2>=<ky^2>=<kz^2>=<k^2>/3 hold and all the matrix
elements of k+^2 and k+kz vanish, so the parameters that only enter through
those (G2, G3, A5, A6, C1..C3, D1..D3) are kept and can be set, but don't
change the blocks.

	Crystal:  ZincBlende, Wurtzite, GenWurtzite
	Impurity: Coulomb, WangChen, LCZAtom, LCZ (host atom - impurity atom + Coulomb tail)
	Overlap:  Overlap

Energy parameters are given in meV, lengths in Bohr radii, except for the
LCZ atomic parameters, which use Rydberg atomic units.
*/
package exp
