/*
 * files_test.go, part of gocryst.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//coordinates and charges with few decimals, so the fixed-width
//6-decimal formats round-trip exactly
func sampleAtoms() []*Atom {
	return []*Atom{
		NewAtom("O", 0, 0, 0, -0.8),
		NewAtom("H", 0.96, 0, 0, 0.4),
		NewAtom("H", -0.24, 0.93, 0, 0.4),
	}
}

func TestQCRoundTrip(t *testing.T) {
	require := require.New(t)
	atoms := sampleAtoms()
	name := filepath.Join(t.TempDir(), "water.qc")
	require.NoError(QCWrite(name, atoms))
	read, err := QCRead(name)
	require.NoError(err)
	require.Len(read, len(atoms))
	for i := range atoms {
		require.True(atoms[i].Equal(read[i]), "atom %d changed in the round trip", i)
	}
}

func TestXYZRoundTrip(t *testing.T) {
	require := require.New(t)
	atoms := sampleAtoms()
	name := filepath.Join(t.TempDir(), "water.xyz")
	require.NoError(XYZWrite(name, atoms))
	read, err := XYZRead(name)
	require.NoError(err)
	require.Len(read, len(atoms))
	for i := range atoms {
		//xyz drops the charges
		want := NewAtom(atoms[i].Symbol, atoms[i].X, atoms[i].Y, atoms[i].Z, 0)
		require.True(want.Equal(read[i]), "atom %d changed in the round trip", i)
	}
}

func TestCompressedRoundTrips(t *testing.T) {
	for _, ext := range []string{".gz", ".zst"} {
		t.Run(ext, func(t *testing.T) {
			require := require.New(t)
			atoms := sampleAtoms()
			name := filepath.Join(t.TempDir(), "water.qc"+ext)
			require.NoError(QCWrite(name, atoms))

			//the file on disk should actually be compressed, i.e. not
			//start with an atom line
			raw, err := os.ReadFile(name)
			require.NoError(err)
			require.NotEqual(byte(' '), raw[0])

			read, err := QCRead(name)
			require.NoError(err)
			require.Len(read, len(atoms))
			for i := range atoms {
				require.True(atoms[i].Equal(read[i]))
			}
		})
	}
}

func TestXYZReadIllFormed(t *testing.T) {
	require := require.New(t)
	name := filepath.Join(t.TempDir(), "bad.xyz")
	require.NoError(os.WriteFile(name, []byte("2\n\n     H   0.000000   0.000000   0.000000\n"), 0644))
	_, err := XYZRead(name)
	require.Error(err, "fewer atom lines than the header promises")

	name2 := filepath.Join(t.TempDir(), "bad2.xyz")
	require.NoError(os.WriteFile(name2, []byte("spam\n\n"), 0644))
	_, err = XYZRead(name2)
	require.Error(err)
}

func TestQCReadIllFormed(t *testing.T) {
	require := require.New(t)
	name := filepath.Join(t.TempDir(), "bad.qc")
	require.NoError(os.WriteFile(name, []byte("     H   0.000000   0.000000\n"), 0644))
	_, err := QCRead(name)
	require.Error(err, "qc lines need five fields")
}
