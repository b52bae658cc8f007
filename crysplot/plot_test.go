/*
 * plot_test.go, part of gocryst.
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

package crysplot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	cryst "github.com/vbarria/gocryst"
	"github.com/vbarria/gocryst/crysplot"
)

func classifiedWater(t *testing.T) []*cryst.Atom {
	t.Helper()
	atoms := []*cryst.Atom{
		cryst.NewAtom("O", 0, 0, 0, -0.8),
		cryst.NewAtom("H", 0.96, 0, 0, 0.4),
		cryst.NewAtom("H", -0.24, 0.93, 0, 0.4),
	}
	bonds, err := cryst.AssignBonds(atoms, nil)
	require.NoError(t, err)
	require.NoError(t, cryst.ClassifyAll(atoms, cryst.ConnectivityMatrix(atoms, bonds)))
	return atoms
}

func TestChargeHistogram(t *testing.T) {
	require := require.New(t)
	atoms := classifiedWater(t)
	prefix := filepath.Join(t.TempDir(), "charges")
	require.NoError(crysplot.ChargeHistogram(atoms, 8, "Partial charges", prefix))
	_, err := os.Stat(prefix + ".png")
	require.NoError(err, "the plot file should exist")
}

func TestKindPopulations(t *testing.T) {
	require := require.New(t)
	atoms := classifiedWater(t)
	prefix := filepath.Join(t.TempDir(), "kinds")
	require.NoError(crysplot.KindPopulations(atoms, "Kind populations", prefix))
	_, err := os.Stat(prefix + ".png")
	require.NoError(err, "the plot file should exist")
}
