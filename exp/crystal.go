/*
 * crystal.go, part of gobound.
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
	"math"

	"github.com/rmera/gobound/basis"
	"github.com/rmera/gobound/term"
	"gonum.org/v1/gonum/mat"
)

//ZincBlende is the crystal model for zinc-blende hosts: the four J=3/2 bands
//plus the two split-off bands.
type ZincBlende struct {
	g1, g2, g3 float64 //Luttinger parameters
	d0         float64 //spin-orbit splitting, meV
}

//NewZincBlende returns a zinc-blende crystal term with the Luttinger parameters g1, g2, g3,
//the spin-orbit splitting d0 (meV) and the dielectric constant k.
func NewZincBlende(g1, g2, g3, d0, k float64) (*term.Crystal, error) {
	return term.NewCrystal(&ZincBlende{g1: g1, g2: g2, g3: g3, d0: d0}, k)
}

func (Z *ZincBlende) Components() int { return 6 }

//InverseRadius returns 1/(k*g1), the hole effective Bohr radius being k*g1 Bohr.
func (Z *ZincBlende) InverseRadius(k float64) float64 {
	return 1 / (k * Z.g1)
}

func (Z *ZincBlende) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	a, b := C.Decay(a1), C.Decay(a2)
	K := Z.g1 * basis.Kinetic(a, b)
	ret := diag(6, K)
	so := K + Z.d0*term.MeV2Ry*basis.Overlap(a, b)
	ret.Set(4, 4, complex(so, 0))
	ret.Set(5, 5, complex(so, 0))
	return ret
}

func (Z *ZincBlende) CrystalParameter(p term.CrystalParameter) (float64, bool) {
	switch p {
	case term.G1:
		return Z.g1, true
	case term.G2:
		return Z.g2, true
	case term.G3:
		return Z.g3, true
	case term.D0:
		return Z.d0, true
	}
	return 0, false
}

func (Z *ZincBlende) SetCrystalParameter(p term.CrystalParameter, v float64) bool {
	switch p {
	case term.G1:
		Z.g1 = v
	case term.G2:
		Z.g2 = v
	case term.G3:
		Z.g3 = v
	case term.D0:
		Z.d0 = v
	default:
		return false
	}
	return true
}

//bands holds the k=0 levels and the kinetic coefficients of the three
//doubly degenerate bands of a wurtzite-like valence band, in the
//Chuang-Chang basis. Energies in Ry.
type bands struct {
	f, g  float64    //k=0 levels of bands 1 and 2 (band 3 is at 0)
	delta float64    //spin-orbit coupling between bands 2 and 3
	kin   [3]float64 //valence (electron-picture) kinetic coefficients
}

//top returns the highest k=0 level.
func (B bands) top() float64 {
	u := (B.g + math.Sqrt(B.g*B.g+8*B.delta*B.delta)) / 2
	return math.Max(B.f, u)
}

//block returns the hole block, top*S - Hv.
func (B bands) block(a, b float64) *mat.CDense {
	S := basis.Overlap(a, b)
	K := basis.Kinetic(a, b)
	t := B.top() * S
	ret := mat.NewCDense(6, 6, nil)
	levels := [3]float64{B.f, B.g, 0}
	for i := 0; i < 3; i++ {
		v := t - (levels[i]*S + B.kin[i]*K)
		ret.Set(i, i, complex(v, 0))
		ret.Set(i+3, i+3, complex(v, 0))
	}
	so := -math.Sqrt2 * B.delta * S
	symSet(ret, 1, 5, so)
	symSet(ret, 2, 4, so)
	return ret
}

//invRadius returns the inverse effective Bohr radius from the hole mass of band 1.
func (B bands) invRadius(k float64) float64 {
	g := math.Abs(B.kin[0])
	if g == 0 {
		return 1 / k
	}
	return 1 / (k * g)
}

//Wurtzite is the crystal model for wurtzite hosts, with the
//Rashba-Sheka-Pikus parameters A1..A6, the crystal field splitting d1 and
//the spin-orbit splittings d2 and d3.
type Wurtzite struct {
	a          [6]float64
	d1, d2, d3 float64 //meV
}

//NewWurtzite returns a wurtzite crystal term. The A parameters are in units of hbar^2/2m0,
//the splittings in meV.
func NewWurtzite(A1, A2, A3, A4, A5, A6, d1, d2, d3, k float64) (*term.Crystal, error) {
	return term.NewCrystal(&Wurtzite{a: [6]float64{A1, A2, A3, A4, A5, A6}, d1: d1, d2: d2, d3: d3}, k)
}

func (W *Wurtzite) bands() bands {
	lambda := (W.a[0] + 2*W.a[1]) / 3
	theta := (W.a[2] + 2*W.a[3]) / 3
	return bands{
		f:     (W.d1 + W.d2) * term.MeV2Ry,
		g:     (W.d1 - W.d2) * term.MeV2Ry,
		delta: W.d3 * term.MeV2Ry,
		kin:   [3]float64{lambda + theta, lambda + theta, lambda},
	}
}

func (W *Wurtzite) Components() int { return 6 }

func (W *Wurtzite) InverseRadius(k float64) float64 { return W.bands().invRadius(k) }

func (W *Wurtzite) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	return W.bands().block(C.Decay(a1), C.Decay(a2))
}

func (W *Wurtzite) param(p term.CrystalParameter) *float64 {
	switch p {
	case term.A1, term.A2, term.A3, term.A4, term.A5, term.A6:
		return &W.a[p-term.A1]
	case term.Delta1:
		return &W.d1
	case term.Delta2:
		return &W.d2
	case term.Delta3:
		return &W.d3
	}
	return nil
}

func (W *Wurtzite) CrystalParameter(p term.CrystalParameter) (float64, bool) {
	if v := W.param(p); v != nil {
		return *v, true
	}
	return 0, false
}

func (W *Wurtzite) SetCrystalParameter(p term.CrystalParameter, v float64) bool {
	if q := W.param(p); q != nil {
		*q = v
		return true
	}
	return false
}

//GenWurtzite is a wurtzite model where each band has its own parameters.
//An, Bn are the kz^2 and k_perp^2 coefficients of band n, Cn and Dn its
//k+^2 and k+kz couplings. d1c, d2c are the crystal field splittings of bands
//1 and 2, d1so, d2so their spin-orbit shifts and d3so the spin-orbit coupling
//between bands 2 and 3.
type GenWurtzite struct {
	a, b, c, d                 [3]float64
	d1c, d2c, d1so, d2so, d3so float64 //meV
}

//NewGenWurtzite returns a generalized wurtzite crystal term. The arrays hold the
//parameters for bands 1, 2, 3.
func NewGenWurtzite(A, B, C, D [3]float64, d1c, d2c, d1so, d2so, d3so, k float64) (*term.Crystal, error) {
	return term.NewCrystal(&GenWurtzite{a: A, b: B, c: C, d: D, d1c: d1c, d2c: d2c, d1so: d1so, d2so: d2so, d3so: d3so}, k)
}

func (G *GenWurtzite) bands() bands {
	var kin [3]float64
	for i := range kin {
		kin[i] = (G.a[i] + 2*G.b[i]) / 3
	}
	return bands{
		f:     (G.d1c + G.d1so) * term.MeV2Ry,
		g:     (G.d2c - G.d2so) * term.MeV2Ry,
		delta: G.d3so * term.MeV2Ry,
		kin:   kin,
	}
}

func (G *GenWurtzite) Components() int { return 6 }

func (G *GenWurtzite) InverseRadius(k float64) float64 { return G.bands().invRadius(k) }

func (G *GenWurtzite) Block(C term.Constants, a1, a2 float64) *mat.CDense {
	return G.bands().block(C.Decay(a1), C.Decay(a2))
}

func (G *GenWurtzite) param(p term.CrystalParameter) *float64 {
	switch p {
	case term.A1, term.A2, term.A3:
		return &G.a[p-term.A1]
	case term.B1, term.B2, term.B3:
		return &G.b[p-term.B1]
	case term.C1, term.C2, term.C3:
		return &G.c[p-term.C1]
	case term.D1, term.D2, term.D3:
		return &G.d[p-term.D1]
	case term.Delta1C:
		return &G.d1c
	case term.Delta2C:
		return &G.d2c
	case term.Delta1SO:
		return &G.d1so
	case term.Delta2SO:
		return &G.d2so
	case term.Delta3SO:
		return &G.d3so
	}
	return nil
}

func (G *GenWurtzite) CrystalParameter(p term.CrystalParameter) (float64, bool) {
	if v := G.param(p); v != nil {
		return *v, true
	}
	return 0, false
}

func (G *GenWurtzite) SetCrystalParameter(p term.CrystalParameter, v float64) bool {
	if q := G.param(p); q != nil {
		*q = v
		return true
	}
	return false
}
