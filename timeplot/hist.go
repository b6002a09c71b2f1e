// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// defaultBarColor fills bars when Extra carries no "color".
var defaultBarColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

// Histogram renders counts as a bar chart with a dashed mean
// reference line.
//
// If every label is numeric, the buckets are sorted by ascending
// label and each bar sits at its (integer-truncated) label position.
// Otherwise the bars keep the series order at positions 0.5, 1.5, …
// and the labels become tick text. Empty xlabel or ylabel omits that
// axis label.
func Histogram(counts CountSeries, title, xlabel, ylabel string, opts Options) (*Chart, error) {
	if len(counts) == 0 {
		return nil, errors.New("timeplot: histogram of empty series")
	}
	opts = opts.withDefaults()

	pos, vals, tickLabels := histLayout(counts)

	ch := newChart(title, xlabel, ylabel, opts)

	fill := color.Color(defaultBarColor)
	if c, ok := opts.fillColor(); ok {
		fill = c
	}
	ch.Add(&bars{
		pos:   pos,
		vals:  vals,
		width: opts.Width,
		fill:  fill,
		edge:  draw.LineStyle{Color: opts.EdgeColor, Width: vg.Points(1)},
	})

	mean := counts.Mean()
	meanLine, err := plotter.NewLine(plotter.XYs{
		{X: pos[0], Y: mean},
		{X: pos[len(pos)-1], Y: mean},
	})
	if err != nil {
		return nil, err
	}
	meanLine.Color = color.Black
	meanLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	ch.Add(meanLine)
	ch.Legend.Add("Mean", meanLine)

	ch.X.Tick.Marker = fixedTicks{pos: pos, labels: tickLabels}
	rotateXTicks(ch.Plot)

	return ch, nil
}

// histLayout computes bar positions, heights and tick text for
// counts, choosing the numeric or categorical axis strategy.
func histLayout(counts CountSeries) (pos, vals []float64, labels []string) {
	pos = make([]float64, len(counts))
	vals = make([]float64, len(counts))
	labels = make([]string, len(counts))

	if counts.AllNumeric() {
		for i, b := range counts.sortedByNumber() {
			pos[i] = float64(int(b.Label.Number()))
			vals[i] = b.Count
			labels[i] = b.Label.String()
		}
		return
	}
	for i, b := range counts {
		pos[i] = 0.5 + float64(i)
		vals[i] = b.Count
		labels[i] = b.Label.String()
	}
	return
}
