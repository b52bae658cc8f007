/*
 * v3.go, part of gocryst.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one per row. It embeds
//*mat.Dense so any gonum operation is available on it directly.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data,
//which is arranged row-major. It returns an error if the length of data
//is not divisible by 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		err := new(Error)
		err.msg = fmt.Sprintf("input slice length %d not divisible by %d", l, cols)
		err.Decorate("NewMatrix")
		return nil, err
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//Matrix2Dense returns the underlying mat.Dense of A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps A into a Matrix. It panics if A does not have
//exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return &Matrix{A}
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(not3xXMatrix)
	}
	return r
}

//Vec returns the components of the ith vector of F.
func (F *Matrix) Vec(i int) (x, y, z float64) {
	return F.At(i, 0), F.At(i, 1), F.At(i, 2)
}

//Norm returns the Euclidean norm of F taken as a flat vector.
func (F *Matrix) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//AddVec adds the 1x3 vector vec to every vector of A, putting the result
//in the receiver. Panics on shape mismatch.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		a := A.VecView(i)
		f := F.VecView(i)
		f.Add(a.Dense, vec.Dense)
	}
}

//SubVec subtracts the 1x3 vector vec from every vector of A, putting the
//result in the receiver. Panics on shape mismatch.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(mat.ErrShape)
	}
	for i := 0; i < ar; i++ {
		a := A.VecView(i)
		f := F.VecView(i)
		f.Sub(a.Dense, vec.Dense)
	}
}

//SwapVecs exchanges vectors i and j of F in place.
func (F *Matrix) SwapVecs(i, j int) {
	if i >= F.NVecs() || j >= F.NVecs() {
		panic("indexes out of range")
	}
	for k := 0; k < 3; k++ {
		vi := F.At(i, k)
		F.Set(i, k, F.At(j, k))
		F.Set(j, k, vi)
	}
}

const not3xXMatrix = "v3: Matrix must have 3 columns"

//Error is the error type of the v3 package. It implements the
//cryst.Error interface.
type Error struct {
	msg  string
	deco []string
}

func (err *Error) Error() string { return err.msg }

//Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
