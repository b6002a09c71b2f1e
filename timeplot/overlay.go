// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// MonthOverlay renders one line-with-markers per year series across
// the calendar months, all on a shared axis. Each series plots its
// counts against its own numeric labels (month numbers 1-12 by
// convention) and is legended by its Year. The x axis ticks at the
// twelve month abbreviations and the y range is fixed by
// Options.YLimits, defaulting to DefaultYLimits.
func MonthOverlay(years []YearSeries, title, xlabel, ylabel string, opts Options) (*Chart, error) {
	if len(years) == 0 {
		return nil, errors.New("timeplot: month overlay of empty collection")
	}
	opts = opts.withDefaults()

	ch := newChart(title, xlabel, ylabel, opts)

	for i, ys := range years {
		if len(ys.Counts) == 0 {
			return nil, fmt.Errorf("timeplot: empty series for year %s", ys.Year)
		}
		xys := make(plotter.XYs, len(ys.Counts))
		for j, b := range ys.Counts {
			if !b.Label.IsNumber() {
				return nil, fmt.Errorf("timeplot: non-numeric month label %q for year %s", b.Label, ys.Year)
			}
			xys[j] = plotter.XY{X: b.Label.Number(), Y: b.Count}
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		opts.styleLine(&line.LineStyle)
		opts.styleGlyph(&points.GlyphStyle)

		ch.Add(line, points)
		ch.Legend.Add(ys.Year, line, points)
	}

	lim := opts.yLimits()
	ch.Y.Min, ch.Y.Max = lim.Min, lim.Max

	pos := make([]float64, 12)
	labels := make([]string, 12)
	for m := 1; m <= 12; m++ {
		pos[m-1] = float64(m)
		labels[m-1] = MonthAbbr(m)
	}
	ch.X.Tick.Marker = fixedTicks{pos: pos, labels: labels}
	rotateXTicks(ch.Plot)

	return ch, nil
}
