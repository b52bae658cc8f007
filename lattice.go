/*
 * lattice.go, part of gocryst.
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

	v3 "github.com/vbarria/gocryst/v3"
)

//Cell is a parallelepiped unit cell, held as a 3x3 matrix with one
//lattice vector per row.
type Cell struct {
	vecs *v3.Matrix
}

//NewCell returns a cell from a matrix with exactly 3 vectors. The matrix
//is referenced, not copied.
func NewCell(vecs *v3.Matrix) (*Cell, error) {
	if vecs == nil {
		panic("Given a nil cell matrix")
	}
	if vecs.NVecs() != 3 {
		err := new(CError)
		err.msg = fmt.Sprintf("a cell needs exactly 3 lattice vectors, got %d", vecs.NVecs())
		err.Decorate("NewCell")
		return nil, err
	}
	return &Cell{vecs: vecs}, nil
}

//CellFromSlice returns a cell from a row-major slice of 9 values, the
//box convention used by trajectory formats.
func CellFromSlice(box []float64) (*Cell, error) {
	if len(box) != 9 {
		err := new(CError)
		err.msg = fmt.Sprintf("a cell needs 9 values, got %d", len(box))
		err.Decorate("CellFromSlice")
		return nil, err
	}
	data := make([]float64, 9)
	copy(data, box)
	vecs, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "CellFromSlice")
	}
	return &Cell{vecs: vecs}, nil
}

//Vec returns a view of the ith lattice vector.
func (C *Cell) Vec(i int) *v3.Matrix {
	return C.vecs.VecView(i)
}

//MinImage returns the shortest distance from at to any single-step
//periodic image of the point (x, y, z) under this cell, plus the image
//coordinates. See Atom.DistanceToPeriodic for the caveats.
func (C *Cell) MinImage(at *Atom, x, y, z float64) (float64, float64, float64, float64) {
	return at.DistanceToPeriodic(x, y, z, C.Vec(0), C.Vec(1), C.Vec(2))
}
