/*
 * blocks.go, part of gobound.
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

import "gonum.org/v1/gonum/mat"

//diag returns a dxd block with v on the diagonal.
func diag(d int, v float64) *mat.CDense {
	b := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		b.Set(i, i, complex(v, 0))
	}
	return b
}

//addScaled puts dst+f*b in dst. Both must be dxd.
func addScaled(dst, b *mat.CDense, f float64) {
	r, c := dst.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, dst.At(i, j)+complex(f, 0)*b.At(i, j))
		}
	}
}

//symSet sets the elements (i,j) and (j,i) of b to v.
func symSet(b *mat.CDense, i, j int, v float64) {
	b.Set(i, j, complex(v, 0))
	b.Set(j, i, complex(v, 0))
}
