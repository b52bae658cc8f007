/*
 * kind.go, part of gocryst.
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
	"strings"
)

//Link is one bonded-neighbor descriptor: the element symbol of the
//neighbor and the order of the bond to it.
type Link struct {
	Symbol string
	Order  float64
}

//LinkCount is a Link together with the number of times it occurs among
//an atom's neighbors.
type LinkCount struct {
	Link  Link
	Count int
}

//Connectivity is the multiset of bonded-neighbor descriptors of an atom,
//stored as an ordered frequency table: most common link first, links
//with equal counts in the order they were first encountered. Two
//Connectivity values describe the same chemistry iff their Keys match,
//regardless of slice order.
type Connectivity []LinkCount

//countLinks collapses links into the ordered frequency table.
func countLinks(links []Link) Connectivity {
	counts := make(map[Link]int, len(links))
	first := make([]Link, 0, len(links))
	for _, l := range links {
		if _, seen := counts[l]; !seen {
			first = append(first, l)
		}
		counts[l]++
	}
	conn := make(Connectivity, 0, len(first))
	for _, l := range first {
		conn = append(conn, LinkCount{Link: l, Count: counts[l]})
	}
	//stable, so equal counts stay in first-encounter order
	sort.SliceStable(conn, func(i, j int) bool { return conn[i].Count > conn[j].Count })
	return conn
}

//Key returns a canonical string for the multiset, usable as a map key.
//It is independent of the order in which the links were encountered:
//entries are compared by count, then symbol, then bond order.
func (C Connectivity) Key() string {
	canon := make(Connectivity, len(C))
	copy(canon, C)
	sort.Slice(canon, func(i, j int) bool {
		if canon[i].Count != canon[j].Count {
			return canon[i].Count > canon[j].Count
		}
		if canon[i].Link.Symbol != canon[j].Link.Symbol {
			return canon[i].Link.Symbol < canon[j].Link.Symbol
		}
		return canon[i].Link.Order < canon[j].Link.Order
	})
	var b strings.Builder
	for _, lc := range canon {
		fmt.Fprintf(&b, "(%s,%g)x%d;", lc.Link.Symbol, lc.Link.Order, lc.Count)
	}
	return b.String()
}

//Equal reports whether C and D are the same multiset.
func (C Connectivity) Equal(D Connectivity) bool {
	return C.Key() == D.Key()
}

func (C Connectivity) String() string {
	return C.Key()
}

//Kind is the canonical classification key of an atom: its element plus
//its Connectivity. Atoms with equal Kinds are chemically equivalent for
//charge-parameter assignment purposes.
type Kind struct {
	Symbol       string
	Connectivity Connectivity
}

//Key returns a canonical string for the kind, usable as a map key. The
//element comparison is case-insensitive, like Atom.Equal.
func (K *Kind) Key() string {
	return normalizeSymbol(K.Symbol) + "|" + K.Connectivity.Key()
}

//Equal reports whether K and L classify the same kind of atom. A nil
//Kind is only equal to another nil Kind.
func (K *Kind) Equal(L *Kind) bool {
	if K == nil || L == nil {
		return K == L
	}
	return K.Key() == L.Key()
}

func (K *Kind) String() string {
	return K.Key()
}

//Classify sets the connectivity and the kind of the atom. atoms is the
//full atom list of the containing structure and row the corresponding
//row of its connectivity matrix: one bond order per peer, zero meaning
//not bonded. Rows of the wrong length are rejected. The row for the atom
//itself normally carries a zero diagonal entry; a nonzero one would be
//counted as a self-link, which is the caller's mistake to avoid.
func (A *Atom) Classify(atoms []*Atom, row []float64) error {
	if len(row) != len(atoms) {
		err := new(CError)
		err.msg = fmt.Sprintf("connectivity row length (%d) does not match the atom count (%d)", len(row), len(atoms))
		err.Decorate("Classify")
		return err
	}
	links := make([]Link, 0, len(atoms))
	for i, at := range atoms {
		if row[i] != 0 {
			links = append(links, Link{Symbol: at.Symbol, Order: row[i]})
		}
	}
	A.connectivity = countLinks(links)
	A.kind = &Kind{Symbol: A.Symbol, Connectivity: A.connectivity}
	return nil
}

//Connectivity returns the atom's connectivity, or nil if Classify has
//not been called on it.
func (A *Atom) Connectivity() Connectivity {
	return A.connectivity
}

//Kind returns the atom's classification key, or nil if Classify has not
//been called on it.
func (A *Atom) Kind() *Kind {
	return A.kind
}
