// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeplot renders aggregated time-series counts as charts.
//
// It wraps gonum/plot with the handful of figure styles used by the
// weather impact analysis: bar charts of per-period counts with a mean
// reference line, per-year overlays across the calendar months, and
// overlays with least-squares trend lines.
//
// Each renderer builds and returns its own Chart. There is no shared
// figure state, so charts can be built in any order and saved
// independently.
package timeplot

import (
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Font sizes fixed by the house figure style.
const (
	titleFontSize = vg.Length(20)
	labelFontSize = vg.Length(16)
	tickFontSize  = vg.Length(12)
)

// A Chart is a rendered figure plus the size to draw it at. It embeds
// the underlying *plot.Plot, so callers can adjust anything the
// renderers don't cover before saving.
type Chart struct {
	*plot.Plot

	// FigWidth and FigHeight give the rendered figure size.
	FigWidth, FigHeight vg.Length
}

// Save writes the chart to path at its figure size. The image format
// is chosen by the file extension, as in plot.Plot.Save.
func (c *Chart) Save(path string) error {
	return c.Plot.Save(c.FigWidth, c.FigHeight, path)
}

// WritePNG renders the chart as PNG into w.
func (c *Chart) WritePNG(w io.Writer) error {
	wt, err := c.Plot.WriterTo(c.FigWidth, c.FigHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// newChart creates a chart with the standard typography. Empty xlabel
// or ylabel means no axis label.
func newChart(title, xlabel, ylabel string, opts Options) *Chart {
	p := plot.New()

	p.Title.Text = title
	p.Title.TextStyle.Font.Size = titleFontSize
	if xlabel != "" {
		p.X.Label.Text = xlabel
		p.X.Label.TextStyle.Font.Size = labelFontSize
	}
	if ylabel != "" {
		p.Y.Label.Text = ylabel
		p.Y.Label.TextStyle.Font.Size = labelFontSize
	}
	p.X.Tick.Label.Font.Size = tickFontSize
	p.Y.Tick.Label.Font.Size = tickFontSize
	p.Legend.TextStyle.Font.Size = tickFontSize
	p.Legend.Top = true

	return &Chart{Plot: p, FigWidth: opts.FigWidth, FigHeight: opts.FigHeight}
}

// rotateXTicks slants the x tick labels 45 degrees.
func rotateXTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}
