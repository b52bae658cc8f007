/*
 * atomicdata.go, part of gocryst.
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

import "strings"

//element is one row of the static element table. Valence and Electrons
//are the valence and total electron counts used by Bader-type analyses.
type element struct {
	Symbol    string
	Number    int
	Valence   int
	Electrons int
}

//The elements resolved by Atom.Electrons and Atom.SetElementFromNumber.
//Just the common organic elements are present; extending coverage to the
//rest of the periodic table means adding rows here, nowhere else.
var elements = []element{
	{"H", 1, 1, 1},
	{"C", 6, 4, 6},
	{"N", 7, 5, 7},
	{"O", 8, 6, 8},
}

var elementBySymbol = make(map[string]*element)
var elementByNumber = make(map[int]*element)

func init() {
	for i := range elements {
		elementBySymbol[elements[i].Symbol] = &elements[i]
		elementByNumber[elements[i].Number] = &elements[i]
	}
}

//normalizeSymbol puts an element symbol in canonical case ("h"->"H",
//"cl"->"Cl") so table lookups are case-insensitive.
func normalizeSymbol(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

//A map for assigning covalent radii to elements.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//Note that just common "bio-elements" are present
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31; set longer on purpose. H only ever has one bond, so the extra candidates get pruned later.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  // hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for checking that atoms don't have too many bonds. A value of 0
//means undefined, i.e. that the atom shouldn't be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"Se": 0,
	"Be": 0,
	"F":  1,
	"Br": 1,
	"I":  1,
}
