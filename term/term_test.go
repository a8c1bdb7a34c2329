/*
 * term_test.go, part of gobound.
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

import (
	"errors"
	"testing"

	"github.com/rmera/gobound/basis"
	"gonum.org/v1/gonum/mat"
)

//toy is a crystal model whose blocks encode the scales that produced them.
type toy struct {
	d        int
	g        float64
	t        *Term //to check the hooks run before the values are stored
	calls    []string
	released int
	sawOld   bool
}

func (m *toy) Block(C Constants, a1, a2 float64) *mat.CDense {
	b := mat.NewCDense(m.d, m.d, nil)
	for i := 0; i < m.d; i++ {
		for j := 0; j < m.d; j++ {
			b.Set(i, j, complex(a1*a2*m.g, float64(10*i+j)))
		}
	}
	return b
}

func (m *toy) Components() int { return m.d }

func (m *toy) InverseRadius(k float64) float64 { return 1 / (k * m.g) }

func (m *toy) BeforeInverseRadius(r float64) {
	m.calls = append(m.calls, "radius")
	if m.t != nil && m.t.InverseRadius() != r {
		m.sawOld = true
	}
}

func (m *toy) BeforeDielectric(k float64) { m.calls = append(m.calls, "dielectric") }

func (m *toy) Release() { m.released++ }

func (m *toy) CrystalParameter(p CrystalParameter) (float64, bool) {
	if p != G1 {
		return 0, false
	}
	return m.g, true
}

func (m *toy) SetCrystalParameter(p CrystalParameter, v float64) bool {
	if p != G1 {
		return false
	}
	m.g = v
	return true
}

func TestMatrixAssembly(Te *testing.T) {
	m := &toy{d: 2, g: 1}
	C, err := NewCrystal(m, 4)
	if err != nil {
		Te.Fatal(err)
	}
	if C.Dim() != 2 || C.InverseRadius() != 0.25 {
		Te.Fatalf("Wrong constants %+v", C.Constants())
	}
	M, err := C.Matrix(0.5, 5, 3)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := M.Dims()
	if r != 6 || c != 6 {
		Te.Fatalf("Matrix is %dx%d, expected 6x6", r, c)
	}
	s, _ := basis.Scales(0.5, 5, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b := m.Block(C.Constants(), s[i], s[j])
			for k := 0; k < 2; k++ {
				for l := 0; l < 2; l++ {
					if M.At(2*i+k, 2*j+l) != b.At(k, l) {
						Te.Errorf("Element (%d,%d) of block (%d,%d) is %v, expected %v", k, l, i, j, M.At(2*i+k, 2*j+l), b.At(k, l))
					}
				}
			}
		}
	}
	//Same constants and granularity, same matrix.
	C2, _ := NewCrystal(&toy{d: 2, g: 1}, 4)
	M2, _ := C2.Matrix(0.5, 5, 3)
	if !mat.CEqual(M, M2) {
		Te.Errorf("Matrix is not deterministic")
	}
	if _, err := C.Matrix(-1, 5, 3); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("Expected ErrInvalidRange, got %v", err)
	}
}

func TestHooksAndOwner(Te *testing.T) {
	m := &toy{d: 1, g: 2}
	C, err := NewCrystal(m, 5)
	if err != nil {
		Te.Fatal(err)
	}
	m.t = &C.Term
	m.calls = nil
	notified := 0
	C.SetOwner(func() error { notified++; return nil })
	if err := C.SetInverseRadius(0.3); err != nil {
		Te.Fatal(err)
	}
	if !m.sawOld {
		Te.Errorf("Hook didn't run before the new value was stored")
	}
	if C.InverseRadius() != 0.3 || notified != 1 {
		Te.Errorf("InverseRadius %g, notified %d times", C.InverseRadius(), notified)
	}
	if err := C.SetDielectric(10); err != nil {
		Te.Fatal(err)
	}
	if C.InverseRadius() != 1.0/20 {
		Te.Errorf("Inverse radius not recomputed: %g", C.InverseRadius())
	}
	if notified != 2 {
		Te.Errorf("Owner notified %d times, expected 2", notified)
	}
	want := []string{"radius", "dielectric", "radius"}
	if len(m.calls) != len(want) {
		Te.Fatalf("Hook calls %v, expected %v", m.calls, want)
	}
	for i := range want {
		if m.calls[i] != want[i] {
			Te.Errorf("Hook calls %v, expected %v", m.calls, want)
		}
	}
	if err := C.SetInverseRadius(-1); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("Expected ErrInvalidRange, got %v", err)
	}
	if err := C.SetDielectric(0); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("Expected ErrInvalidRange, got %v", err)
	}
	if notified != 2 {
		Te.Errorf("Failed setters notified the owner")
	}
	//SetConstants is used by the owner itself, and doesn't notify it.
	I := NewImpurity(&toy{d: 1, g: 1})
	I.SetOwner(func() error { notified++; return nil })
	I.SetConstants(C.Constants())
	if I.Constants() != C.Constants() || notified != 2 {
		Te.Errorf("SetConstants: %+v vs %+v, notified %d", I.Constants(), C.Constants(), notified)
	}
}

func TestOwnerRejects(Te *testing.T) {
	m := &toy{d: 1, g: 1}
	I := NewImpurity(m)
	I.SetConstants(Constants{InvRadius: 0.5, Dielectric: 4, Components: 1})
	refused := errors.New("refused")
	I.SetOwner(func() error { return refused })
	m.calls = nil
	if err := I.SetDielectric(8); !errors.Is(err, refused) {
		Te.Errorf("Expected the owner's error, got %v", err)
	}
	if err := I.SetInverseRadius(2); !errors.Is(err, refused) {
		Te.Errorf("Expected the owner's error, got %v", err)
	}
	if I.Dielectric() != 4 || I.InverseRadius() != 0.5 {
		Te.Errorf("Rejected values kept: %+v", I.Constants())
	}
	//The hooks see the restored values too.
	want := []string{"dielectric", "dielectric", "radius", "radius"}
	if len(m.calls) != len(want) {
		Te.Fatalf("Hook calls %v, expected %v", m.calls, want)
	}
	for i := range want {
		if m.calls[i] != want[i] {
			Te.Errorf("Hook calls %v, expected %v", m.calls, want)
		}
	}
	if DefaultConstants() != (Constants{InvRadius: 1, Dielectric: 1, Components: 1}) {
		Te.Errorf("Wrong default constants %+v", DefaultConstants())
	}
}

func TestParameters(Te *testing.T) {
	m := &toy{d: 1, g: 2}
	C, _ := NewCrystal(m, 5)
	notified := 0
	C.SetOwner(func() error { notified++; return nil })
	v, err := C.Parameter(G1)
	if err != nil || v != 2 {
		Te.Errorf("G1=%g, %v", v, err)
	}
	if err := C.SetParameter(G1, 4); err != nil {
		Te.Fatal(err)
	}
	if C.InverseRadius() != 1.0/20 || notified != 1 {
		Te.Errorf("Inverse radius %g after setting G1, notified %d", C.InverseRadius(), notified)
	}
	//An invalid inverse radius restores the old value.
	if err := C.SetParameter(G1, -1); !errors.Is(err, ErrInvalidRange) {
		Te.Errorf("Expected ErrInvalidRange, got %v", err)
	}
	if v, _ := C.Parameter(G1); v != 4 {
		Te.Errorf("G1 not restored: %g", v)
	}
	if _, err := C.Parameter(A5); !errors.Is(err, ErrUnsupportedParameter) {
		Te.Errorf("Expected ErrUnsupportedParameter, got %v", err)
	}
	if err := C.SetParameter(D0, 1); !errors.Is(err, ErrUnsupportedParameter) {
		Te.Errorf("Expected ErrUnsupportedParameter, got %v", err)
	}
	I := NewImpurity(&toy{d: 1, g: 1})
	if err := I.SetParameter(V, 1); !errors.Is(err, ErrUnsupportedParameter) {
		Te.Errorf("Expected ErrUnsupportedParameter, got %v", err)
	}
	if G1.String() != "G1" || Delta3SO.String() != "Delta3SO" || R1.String() != "R1" {
		Te.Errorf("Wrong parameter names %s %s %s", G1, Delta3SO, R1)
	}
}

func TestRelease(Te *testing.T) {
	m := &toy{d: 1, g: 1}
	O := NewOverlap(m)
	notified := 0
	O.SetOwner(func() error { notified++; return nil })
	O.Release()
	O.Release()
	if m.released != 1 || !O.Released() {
		Te.Errorf("Release hook ran %d times", m.released)
	}
	if err := O.SetDielectric(3); err != nil || notified != 0 {
		Te.Errorf("Released term still notifies its owner")
	}
	defer func() {
		if r := recover(); r != ErrReleased {
			Te.Errorf("Expected a ErrReleased panic, got %v", r)
		}
	}()
	O.Matrix(1, 2, 2)
}

type badShape struct{}

func (badShape) Block(C Constants, a1, a2 float64) *mat.CDense {
	return mat.NewCDense(C.Components+1, C.Components+1, nil)
}

func TestBlockShape(Te *testing.T) {
	I := NewImpurity(badShape{})
	defer func() {
		if r := recover(); r != ErrBlockShape {
			Te.Errorf("Expected a ErrBlockShape panic, got %v", r)
		}
	}()
	I.Matrix(1, 2, 2)
}
