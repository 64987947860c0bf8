// Package report renders diagnostics for prepared datasets.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// absGrid exposes the absolute correlation matrix as a plotter.GridXYZ.
// Row 0 is drawn at the top so the layout reads like a table.
type absGrid struct {
	m mat.Symmetric
}

func (g absGrid) Dims() (c, r int) {
	n := g.m.SymmetricDim()
	return n, n
}

func (g absGrid) Z(c, r int) float64 {
	n := g.m.SymmetricDim()
	return math.Abs(g.m.At(n-1-r, c))
}

func (g absGrid) X(c int) float64 { return float64(c) }

func (g absGrid) Y(r int) float64 { return float64(r) }

// Min and Max pin the colour scale to [0, 1] whatever the data holds.
func (g absGrid) Min() float64 { return 0 }

func (g absGrid) Max() float64 { return 1 }

// Heatmap writes a PNG (or any format gonum/plot infers from the extension)
// of |corr| with one row and column per name. Undefined cells are grey.
func Heatmap(names []string, corr mat.Symmetric, path string) error {
	if corr == nil || corr.SymmetricDim() == 0 {
		return errors.New("report: empty correlation matrix")
	}
	n := corr.SymmetricDim()
	if len(names) != n {
		return fmt.Errorf("report: %d names for a %dx%d matrix", len(names), n, n)
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(1)

	hm := plotter.NewHeatMap(absGrid{m: corr}, cm.Palette(255))
	hm.Min, hm.Max = 0, 1
	hm.NaN = color.Gray{Y: 200}

	reversed := make([]string, n)
	for i, name := range names {
		reversed[n-1-i] = name
	}

	p := plot.New()
	p.Title.Text = "Absolute correlation"
	p.Add(hm)
	p.NominalX(names...)
	p.NominalY(reversed...)
	p.X.Tick.Label.Rotation = math.Pi / 2

	side := 3*vg.Inch + vg.Length(n)*vg.Points(28)
	if err := p.Save(side, side, path); err != nil {
		return fmt.Errorf("report: save heatmap: %w", err)
	}
	return nil
}
