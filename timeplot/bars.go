// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bars draws one vertical bar per bucket at an explicit x position,
// with the bar width measured in x units. plotter.BarChart only packs
// bars at successive offsets with display-unit widths, so it cannot
// place bars on a numeric axis the way a value_counts histogram
// needs.
type bars struct {
	pos, vals []float64
	width     float64
	fill      color.Color
	edge      draw.LineStyle
}

var _ plot.Plotter = (*bars)(nil)

func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, x := range b.pos {
		xmin := trX(x - b.width/2)
		xmax := trX(x + b.width/2)
		ymin := trY(0)
		ymax := trY(b.vals[i])

		pts := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmin, Y: ymax},
			{X: xmax, Y: ymax},
			{X: xmax, Y: ymin},
		}
		if b.fill != nil {
			c.FillPolygon(b.fill, c.ClipPolygonY(pts))
		}
		pts = append(pts, vg.Point{X: xmin, Y: ymin})
		c.StrokeLines(b.edge, c.ClipLinesY(pts)...)
	}
}

// DataRange implements plot.DataRanger, spanning the full bar
// rectangles and always including y=0.
func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, math.Inf(-1)
	for i, x := range b.pos {
		xmin = math.Min(xmin, x-b.width/2)
		xmax = math.Max(xmax, x+b.width/2)
		ymin = math.Min(ymin, b.vals[i])
		ymax = math.Max(ymax, b.vals[i])
	}
	return
}
