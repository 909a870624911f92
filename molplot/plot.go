/*
 * plot.go, part of gomol.
 *
 * Copyright 2026 The gomol developers
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

//Package molplot draws simple diagnostic plots for molecules: a heat map
//of the interatomic distance matrix and a 2D projection of the atom
//positions. The output format is decided by the extension of the plot
//file name (.png, .svg, .pdf...).
package molplot

import (
	"fmt"

	mol "github.com/gomol-dev/gomol"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//distGrid adapts a distance matrix to plotter.GridXYZ. Columns and rows
//are both atom indexes.
type distGrid struct {
	m *mat.SymDense
}

func (g distGrid) Dims() (int, int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g distGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g distGrid) X(c int) float64    { return float64(c) }
func (g distGrid) Y(r int) float64    { return float64(r) }

//DistanceMap plots the interatomic distance matrix of M as a heat map and
//saves it to plotname. It fails for molecules with no atoms.
func DistanceMap(M *mol.Molecule, title, plotname string) error {
	dm := M.DistanceMatrix()
	if dm == nil {
		return fmt.Errorf("molplot: nothing to plot for an empty molecule")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Atom index"
	p.Y.Label.Text = "Atom index"
	hm := plotter.NewHeatMap(distGrid{dm}, palette.Heat(12, 1))
	p.Add(hm)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, plotname); err != nil {
		return fmt.Errorf("molplot: %w", err)
	}
	return nil
}

//ProjectionXY plots the projection of the atom positions of M on the xy
//plane, each point labeled with its element symbol, and saves it to
//plotname. It fails for molecules with no atoms.
func ProjectionXY(M *mol.Molecule, title, plotname string) error {
	if M.Len() == 0 {
		return fmt.Errorf("molplot: nothing to plot for an empty molecule")
	}
	pts := make(plotter.XYs, M.Len())
	labels := make([]string, M.Len())
	for i := 0; i < M.Len(); i++ {
		at := M.Atom(i)
		pts[i].X = at.Position[0]
		pts[i].Y = at.Position[1]
		labels[i] = at.Symbol
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("molplot: %w", err)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return fmt.Errorf("molplot: %w", err)
	}
	p.Add(s, l)
	if err := p.Save(5*vg.Inch, 5*vg.Inch, plotname); err != nil {
		return fmt.Errorf("molplot: %w", err)
	}
	return nil
}
