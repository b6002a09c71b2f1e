// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultYLimits is the y range applied by MonthOverlay when
// Options.YLimits is nil. The bounds are tuned for monthly accident
// totals in the source data set.
var DefaultYLimits = YRange{Min: 500, Max: 2000}

// A YRange is a fixed y-axis range.
type YRange struct {
	Min, Max float64
}

// Options configure a renderer. The zero value selects the defaults
// noted on each field.
type Options struct {
	// Width is the bar width in x units. Zero means 1. Histogram
	// only.
	Width float64

	// EdgeColor outlines each bar. Nil means black. Histogram
	// only.
	EdgeColor color.Color

	// FigWidth and FigHeight give the figure size. Zero means 8
	// inches each.
	FigWidth, FigHeight vg.Length

	// YLimits fixes the y-axis range of MonthOverlay. Nil means
	// DefaultYLimits.
	YLimits *YRange

	// Extra is forwarded to the drawn primitive's style. Known
	// keys:
	//
	//	"color"     color.Color  series or bar fill color
	//	"linewidth" float64      line width in points
	//	"linestyle" string       "-", "--" or ":"
	//	"marker"    string       "o", "s", "^" or "" (none)
	//	"alpha"     float64      opacity in [0, 1]
	//
	// Keys the primitive has no slot for are ignored.
	Extra map[string]interface{}
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 1
	}
	if o.EdgeColor == nil {
		o.EdgeColor = color.Black
	}
	if o.FigWidth == 0 {
		o.FigWidth = 8 * vg.Inch
	}
	if o.FigHeight == 0 {
		o.FigHeight = 8 * vg.Inch
	}
	return o
}

func (o Options) yLimits() YRange {
	if o.YLimits != nil {
		return *o.YLimits
	}
	return DefaultYLimits
}

// fillColor returns the "color" override, if any, with "alpha"
// applied.
func (o Options) fillColor() (color.Color, bool) {
	c, ok := o.Extra["color"].(color.Color)
	if !ok {
		return nil, false
	}
	return o.withAlpha(c), true
}

// styleLine applies the Extra keys that map onto a line style.
func (o Options) styleLine(ls *draw.LineStyle) {
	if c, ok := o.Extra["color"].(color.Color); ok {
		ls.Color = o.withAlpha(c)
	}
	if w, ok := o.Extra["linewidth"].(float64); ok {
		ls.Width = vg.Points(w)
	}
	if s, ok := o.Extra["linestyle"].(string); ok {
		switch s {
		case "--":
			ls.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		case ":":
			ls.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
		case "-":
			ls.Dashes = nil
		}
	}
}

// styleGlyph applies the Extra keys that map onto a marker style.
func (o Options) styleGlyph(gs *draw.GlyphStyle) {
	if c, ok := o.Extra["color"].(color.Color); ok {
		gs.Color = o.withAlpha(c)
	}
	if m, ok := o.Extra["marker"].(string); ok {
		switch m {
		case "o":
			gs.Shape = draw.CircleGlyph{}
		case "s":
			gs.Shape = draw.BoxGlyph{}
		case "^":
			gs.Shape = draw.TriangleGlyph{}
		case "":
			gs.Shape = nil
		}
	}
}

func (o Options) withAlpha(c color.Color) color.Color {
	a, ok := o.Extra["alpha"].(float64)
	if !ok {
		return c
	}
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*float64(n.A) + 0.5)
	return n
}
