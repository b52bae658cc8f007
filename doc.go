/*
 * doc.go, part of gocryst.
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

//Package cryst provides an atom/point-charge type for molecular and
//crystal systems, periodic minimum-image distances, distance-based bond
//assignment and a connectivity-based classification of atoms into "kinds"
//(element plus bonded-neighbor multiset) for charge-model parameter
//lookups. It also reads and writes simple fixed-width atom-list formats.
//
//Functions here follow the convention that recoverable conditions return
//errors while plainly wrong usage (nil atoms, out-of-range indexes)
//panics.
package cryst
