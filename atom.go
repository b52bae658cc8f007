/*
 * atom.go, part of gocryst.
 *
 * Copyright 2024 The gocryst developers
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

package cryst

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	v3 "github.com/vbarria/gocryst/v3"
)

//Atom represents one atom in a molecular or crystal system. It is
//sometimes also used to represent point charges, with Symbol set to
//"point". Coordinates and the partial charge live on the atom itself;
//Bonds, connectivity and kind are filled later by the bond-assignment
//and classification machinery.
type Atom struct {
	Symbol string
	X      float64
	Y      float64
	Z      float64
	Charge float64 //partial atomic charge
	Number int     //atomic number
	Index  int     //position in the containing structure, set by FillIndexes
	Bonds  []*Bond

	connectivity Connectivity
	kind         *Kind
}

//NewAtom returns an atom with the given symbol, coordinates and partial
//charge. An empty symbol defaults to "H". The atomic number is left at
//its placeholder value of 1; use SetElementFromNumber to derive the
//symbol from a number instead.
func NewAtom(symbol string, x, y, z, charge float64) *Atom {
	if symbol == "" {
		symbol = "H"
	}
	return &Atom{Symbol: symbol, X: x, Y: y, Z: z, Charge: charge, Number: 1}
}

//AtomFromStrings builds an atom from text fields, as read from an
//atom-list file. Numeric fields that cannot be parsed as floats are
//reported and left at zero; construction itself never fails.
func AtomFromStrings(symbol, x, y, z, charge string) *Atom {
	A := NewAtom(symbol, 0, 0, 0, 0)
	ok := true
	for _, f := range []struct {
		in  string
		dst *float64
	}{{x, &A.X}, {y, &A.Y}, {z, &A.Z}, {charge, &A.Charge}} {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.in), 64)
		if err != nil {
			ok = false
			continue
		}
		*f.dst = v
	}
	if !ok {
		log.Printf("gocryst: some coordinates or charges for atom %s cannot be parsed as floats, left at zero", A.Symbol)
	}
	return A
}

//Copy returns a copy of the atom. Bonds, connectivity and kind are
//shared, not deep-copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := new(Atom)
	*N = *A
	return N
}

//String returns the atom as one fixed-width line of the charge-inclusive
//(qc) atom-list format: the symbol right-justified in 6 columns followed
//by x, y, z and the charge, each in 10 columns with 6 decimals.
func (A *Atom) String() string {
	return fmt.Sprintf("%6s %10.6f %10.6f %10.6f %10.6f", A.Symbol, A.X, A.Y, A.Z, A.Charge)
}

//XYZString returns the atom as one line of the xyz format, i.e. like
//String but without the charge field.
func (A *Atom) XYZString() string {
	return fmt.Sprintf("%6s %10.6f %10.6f %10.6f", A.Symbol, A.X, A.Y, A.Z)
}

//Equal reports whether A and B have the same element (compared ignoring
//case) and exactly equal coordinates and charge. There is no tolerance;
//callers needing approximate comparison must implement it themselves.
func (A *Atom) Equal(B *Atom) bool {
	if A == nil || B == nil {
		panic("Attempted to compare a nil atom")
	}
	return strings.EqualFold(A.Symbol, B.Symbol) &&
		A.X == B.X && A.Y == B.Y && A.Z == B.Z && A.Charge == B.Charge
}

//DistanceTo returns the Euclidean distance from the atom to the point
//(x, y, z).
func (A *Atom) DistanceTo(x, y, z float64) float64 {
	dx := A.X - x
	dy := A.Y - y
	dz := A.Z - z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

//DistanceToPeriodic returns the shortest distance from the atom to any
//periodic image of the point (x, y, z) under the unit cell spanned by
//the 1x3 lattice vectors aVec, bVec and cVec, along with the coordinates
//of that closest image. Only single-step translations are considered:
//the point and its 26 images obtained from {-1,0,+1} multiples of each
//lattice vector. For heavily skewed cells the true nearest image can lie
//further out and will be missed; this is a nearest-neighbor search for
//near-orthogonal cells, not a general minimum-image convention.
func (A *Atom) DistanceToPeriodic(x, y, z float64, aVec, bVec, cVec *v3.Matrix) (float64, float64, float64, float64) {
	var trans [3][3][3]float64
	for i, v := range [3]*v3.Matrix{aVec, bVec, cVec} {
		vx, vy, vz := v.Vec(0)
		//the lattice vector, the null vector and the negative lattice vector
		trans[i] = [3][3]float64{{vx, vy, vz}, {0, 0, 0}, {-vx, -vy, -vz}}
	}
	rMin := math.Inf(1)
	var x3, y3, z3 float64
	for _, ta := range trans[0] {
		for _, tb := range trans[1] {
			for _, tc := range trans[2] {
				x2 := x + ta[0] + tb[0] + tc[0]
				y2 := y + ta[1] + tb[1] + tc[1]
				z2 := z + ta[2] + tb[2] + tc[2]
				r := A.DistanceTo(x2, y2, z2)
				//strict <, so among ties the first image visited wins
				if r < rMin {
					rMin = r
					x3 = x2
					y3 = y2
					z3 = z2
				}
			}
		}
	}
	return rMin, x3, y3, z3
}

//Translated returns a new atom with the same symbol and charge, with the
//coordinates offset by (dx, dy, dz). The receiver is not modified.
func (A *Atom) Translated(dx, dy, dz float64) *Atom {
	return NewAtom(A.Symbol, A.X+dx, A.Y+dy, A.Z+dz, A.Charge)
}

//Translate offsets the coordinates of the atom by (dx, dy, dz) in place.
func (A *Atom) Translate(dx, dy, dz float64) {
	A.X += dx
	A.Y += dy
	A.Z += dz
}

//Electrons returns the valence and total electron counts for the atom's
//element, looked up case-insensitively in the static element table.
//Elements not in the table yield (0, 0).
func (A *Atom) Electrons() (valence, total int) {
	el, ok := elementBySymbol[normalizeSymbol(A.Symbol)]
	if !ok {
		return 0, 0
	}
	return el.Valence, el.Electrons
}

//SetElementFromNumber sets the atom's symbol from the given atomic
//number. Numbers not in the static element table leave the symbol
//unchanged.
func (A *Atom) SetElementFromNumber(num int) {
	if el, ok := elementByNumber[num]; ok {
		A.Symbol = el.Symbol
	}
}
