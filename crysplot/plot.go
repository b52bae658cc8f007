/*
 * plot.go, part of gocryst.
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

//Package crysplot produces simple summary plots for classified
//structures: the distribution of partial charges and the population of
//each atom kind.
package crysplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	cryst "github.com/vbarria/gocryst"
)

//ChargeHistogram plots the distribution of partial charges of atoms into
//bins bins and saves it as plotname.png.
func ChargeHistogram(atoms []*cryst.Atom, bins int, title, plotname string) error {
	if atoms == nil {
		panic("Given nil atoms")
	}
	vals := make(plotter.Values, 0, len(atoms))
	for _, at := range atoms {
		vals = append(vals, at.Charge)
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Partial charge"
	p.Y.Label.Text = "Atoms"
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

//KindPopulations plots a bar chart with the number of atoms of each kind
//and saves it as plotname.png. Atoms must have been classified first;
//unclassified atoms are counted under an "unclassified" bar.
func KindPopulations(atoms []*cryst.Atom, title, plotname string) error {
	if atoms == nil {
		panic("Given nil atoms")
	}
	groups, order := cryst.GroupByKind(atoms)
	vals := make(plotter.Values, 0, len(order))
	labels := make([]string, 0, len(order))
	for _, key := range order {
		vals = append(vals, float64(len(groups[key])))
		if key == "" {
			key = "unclassified"
		}
		labels = append(labels, key)
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Atoms"
	bars, err := plotter.NewBarChart(vals, vg.Points(25))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)
	return p.Save(6*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
