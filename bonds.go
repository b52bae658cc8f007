/*
 * bonds.go, part of gocryst.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond connects two atoms of a structure. Order 0 means undetermined.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
	Order float64
}

//Cross returns the atom on the other side of the bond from origin. It
//panics if origin is not part of the bond, which has to be a programming
//error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//removeBondID returns a new slice with the bond of the given index
//removed.
func removeBondID(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//FillIndexes sets the Index field of every atom to its position in the
//slice. The bond machinery requires indexes to be filled.
func FillIndexes(atoms []*Atom) {
	for i, at := range atoms {
		at.Index = i
	}
}

//AssignBonds assigns bonds to atoms based on a simple distance
//criterion, similar to that described in DOI:10.1186/1758-2946-3-33.
//If cell is not nil, distances are taken to the nearest periodic image,
//so bonds across the cell boundary are found too. Atoms that end up with
//more bonds than their element allows keep only the shortest ones.
//It might get slow for large systems; it's really not thought for
//proteins or macromolecules.
func AssignBonds(atoms []*Atom, cell *Cell) ([]*Bond, error) {
	FillIndexes(atoms)
	for _, at := range atoms {
		at.Bonds = nil
	}
	bonds := make([]*Bond, 0, 10)
	var nextIndex int
	for i, at1 := range atoms {
		cov1 := symbolCovrad[normalizeSymbol(at1.Symbol)]
		if cov1 == 0 {
			err := new(CError)
			err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at1.Symbol, i)
			err.Decorate("AssignBonds")
			return nil, err
		}
		for j := i + 1; j < len(atoms); j++ {
			at2 := atoms[j]
			cov2 := symbolCovrad[normalizeSymbol(at2.Symbol)]
			if cov2 == 0 {
				err := new(CError)
				err.msg = fmt.Sprintf("Couldn't find the covalent radii for %s %d", at2.Symbol, j)
				err.Decorate("AssignBonds")
				return nil, err
			}
			var d float64
			if cell != nil {
				d, _, _, _ = cell.MinImage(at1, at2.X, at2.Y, at2.Z)
			} else {
				d = at1.DistanceTo(at2.X, at2.Y, at2.Z)
			}
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2, Order: 1}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b) //just to easily keep track of them
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds, removing the longest.
	for _, at := range atoms {
		max := symbolMaxBonds[normalizeSymbol(at.Symbol)]
		if max == 0 { //means there is no specified number of bonds for this atom
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			b := at.Bonds[len(at.Bonds)-1]
			other := b.Cross(at)
			other.Bonds = removeBondID(other.Bonds, b.Index)
			at.Bonds = at.Bonds[:len(at.Bonds)-1]
			bonds = removeBondID(bonds, b.Index)
		}
	}
	return bonds, nil
}

//ConnectivityMatrix builds the square bond-order matrix of a structure
//from its bonds: entry (i, j) is the order of the bond between atoms i
//and j, or 0 if they are not bonded. Bonds of undetermined order count
//as single bonds. Indexes must be filled (AssignBonds does that).
func ConnectivityMatrix(atoms []*Atom, bonds []*Bond) *mat.Dense {
	n := len(atoms)
	conn := mat.NewDense(n, n, nil)
	for _, b := range bonds {
		order := b.Order
		if order == 0 {
			order = 1
		}
		conn.Set(b.At1.Index, b.At2.Index, order)
		conn.Set(b.At2.Index, b.At1.Index, order)
	}
	return conn
}

//ClassifyAll classifies every atom of the structure against the given
//connectivity matrix, which must be square and match the atom count.
func ClassifyAll(atoms []*Atom, conn *mat.Dense) error {
	r, c := conn.Dims()
	if r != len(atoms) || c != len(atoms) {
		err := new(CError)
		err.msg = fmt.Sprintf("connectivity matrix is %dx%d but the structure has %d atoms", r, c, len(atoms))
		err.Decorate("ClassifyAll")
		return err
	}
	for i, at := range atoms {
		if err := at.Classify(atoms, mat.Row(nil, i, conn)); err != nil {
			return errDecorate(err, "ClassifyAll")
		}
	}
	return nil
}

//GroupByKind groups classified atoms by their Kind key. It returns the
//groups and the keys in first-encounter order, so output derived from
//them is deterministic. Unclassified atoms are collected under the empty
//key.
func GroupByKind(atoms []*Atom) (map[string][]*Atom, []string) {
	groups := make(map[string][]*Atom)
	order := make([]string, 0)
	for _, at := range atoms {
		key := ""
		if at.Kind() != nil {
			key = at.Kind().Key()
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], at)
	}
	return groups, order
}
