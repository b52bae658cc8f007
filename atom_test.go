/*
 * atom_test.go, part of gocryst.
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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAtomDefaults(t *testing.T) {
	require := require.New(t)
	A := NewAtom("", 0, 0, 0, 0)
	require.Equal("H", A.Symbol, "empty symbol should default to H")
	require.Equal(1, A.Number)
	require.Nil(A.Connectivity(), "connectivity should be nil before classification")
	require.Nil(A.Kind(), "kind should be nil before classification")
}

func TestAtomFromStrings(t *testing.T) {
	require := require.New(t)
	A := AtomFromStrings("C", "1.0", "2.0", "3.0", "-0.5")
	require.True(A.Equal(NewAtom("C", 1.0, 2.0, 3.0, -0.5)))

	//unparseable fields are left at zero, the rest are still read
	B := AtomFromStrings("C", "1.0", "2.0", "spam", "-0.5")
	require.Equal(1.0, B.X)
	require.Equal(2.0, B.Y)
	require.Equal(0.0, B.Z, "bad coordinate should be left at its zero default")
	require.Equal(-0.5, B.Charge)
}

func TestAtomStrings(t *testing.T) {
	require := require.New(t)
	A := NewAtom("C", 1, 2, 3, -0.5)
	require.Equal("     C   1.000000   2.000000   3.000000  -0.500000", A.String())
	require.Equal("     C   1.000000   2.000000   3.000000", A.XYZString())
}

func TestAtomEqual(t *testing.T) {
	require := require.New(t)
	A := NewAtom("H", 1, 2, 3, 0.5)
	B := NewAtom("h", 1, 2, 3, 0.5)
	require.True(A.Equal(B), "element comparison should ignore case")

	C := NewAtom("H", 1, 2, 3, 0.5+1e-9)
	require.False(A.Equal(C), "equality has no tolerance")
}

func TestDistanceTo(t *testing.T) {
	require := require.New(t)
	A := NewAtom("C", 0, 0, 0, 0)
	require.Equal(5.0, A.DistanceTo(3, 4, 0))

	//symmetry under swapping the atom and point roles
	B := NewAtom("C", 3, 4, 0, 0)
	require.Equal(A.DistanceTo(3, 4, 0), B.DistanceTo(0, 0, 0))

	//triangle inequality with a third point
	p := [3]float64{1, -2, 2}
	C := NewAtom("C", p[0], p[1], p[2], 0)
	d13 := A.DistanceTo(3, 4, 0)
	d12 := A.DistanceTo(p[0], p[1], p[2])
	d23 := C.DistanceTo(3, 4, 0)
	require.LessOrEqual(d13, d12+d23+1e-12)
}

func TestTranslated(t *testing.T) {
	require := require.New(t)
	A := NewAtom("O", 1, 2, 3, -0.25)
	//offsets exactly representable in binary, so the round trip is exact
	B := A.Translated(1.5, -2.25, 0.5)
	require.True(A.Equal(NewAtom("O", 1, 2, 3, -0.25)), "Translated must not mutate the receiver")
	require.Equal("O", B.Symbol)
	require.Equal(-0.25, B.Charge)
	require.True(B.Translated(-1.5, 2.25, -0.5).Equal(A), "translation round trip")
}

func TestTranslate(t *testing.T) {
	require := require.New(t)
	A := NewAtom("O", 1, 2, 3, -0.25)
	A.Translate(1.5, -2.25, 0.5)
	require.Equal(2.5, A.X)
	require.Equal(-0.25, A.Y)
	require.Equal(3.5, A.Z)
	A.Translate(-1.5, 2.25, -0.5)
	require.True(A.Equal(NewAtom("O", 1, 2, 3, -0.25)))
}

func TestElectrons(t *testing.T) {
	require := require.New(t)
	A := NewAtom("n", 0, 0, 0, 0)
	valence, total := A.Electrons()
	require.Equal(5, valence, "lookup should be case-insensitive")
	require.Equal(7, total)

	B := NewAtom("Ar", 0, 0, 0, 0)
	valence, total = B.Electrons()
	require.Equal(0, valence, "elements outside the table yield the sentinel")
	require.Equal(0, total)
}

func TestSetElementFromNumber(t *testing.T) {
	require := require.New(t)
	A := NewAtom("H", 0, 0, 0, 0)
	A.SetElementFromNumber(8)
	require.Equal("O", A.Symbol)
	A.SetElementFromNumber(99)
	require.Equal("O", A.Symbol, "unknown numbers leave the symbol unchanged")
}

func TestCopy(t *testing.T) {
	require := require.New(t)
	A := NewAtom("C", 1, 2, 3, 0.5)
	B := A.Copy()
	B.Translate(1, 1, 1)
	require.False(A.Equal(B))
	require.Equal(1.0, A.X, "Copy must not alias the original")
	require.True(math.Abs(B.X-2.0) == 0)
}
