// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// DefaultTrendDegree is the polynomial degree TrendOverlay fits when
// the caller passes degree 0.
const DefaultTrendDegree = 3

// TrendOverlay renders one line per series against ordinal positions
// 0..N-1 (for example day-of-year order), legended by Year and
// colored from the plotutil cycle.
//
// If fitTrend is set, each series also gets a least-squares
// polynomial trend line of the given degree, drawn at double width in
// trendColor, or in the series color when trendColor is nil. A series
// with no more points than the degree cannot be fitted and is
// reported as an error.
func TrendOverlay(years []YearSeries, title, xlabel, ylabel string, fitTrend bool, degree int, trendColor color.Color, opts Options) (*Chart, error) {
	if len(years) == 0 {
		return nil, errors.New("timeplot: trend overlay of empty collection")
	}
	if degree == 0 {
		degree = DefaultTrendDegree
	}
	opts = opts.withDefaults()

	ch := newChart(title, xlabel, ylabel, opts)

	for i, ys := range years {
		if len(ys.Counts) == 0 {
			return nil, fmt.Errorf("timeplot: empty series for year %s", ys.Year)
		}
		vals := ys.Counts.Values()
		xs := ordinals(len(vals))

		xys := make(plotter.XYs, len(vals))
		for j := range vals {
			xys[j] = plotter.XY{X: xs[j], Y: vals[j]}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		seriesColor := plotutil.Color(i)
		line.Color = seriesColor
		opts.styleLine(&line.LineStyle)

		ch.Add(line)
		ch.Legend.Add(ys.Year, line)

		if !fitTrend {
			continue
		}
		fitted, err := trendFit(xs, vals, degree)
		if err != nil {
			return nil, fmt.Errorf("timeplot: year %s: %w", ys.Year, err)
		}
		fxys := make(plotter.XYs, len(fitted))
		for j := range fitted {
			fxys[j] = plotter.XY{X: xs[j], Y: fitted[j]}
		}
		trend, err := plotter.NewLine(fxys)
		if err != nil {
			return nil, err
		}
		trend.Width = vg.Points(2)
		trend.Color = seriesColor
		if trendColor != nil {
			trend.Color = trendColor
		}
		ch.Add(trend)
		ch.Legend.Add(fmt.Sprintf("Least Squares fit with degree %d, year %s", degree, ys.Year), trend)
	}

	rotateXTicks(ch.Plot)

	return ch, nil
}

// trendFit fits a least-squares polynomial of the given degree to
// (xs, vals) and returns it sampled at xs.
func trendFit(xs, vals []float64, degree int) ([]float64, error) {
	if degree < 1 {
		return nil, fmt.Errorf("fit degree %d is not positive", degree)
	}
	if len(vals) <= degree {
		return nil, fmt.Errorf("cannot fit degree %d polynomial to %d points", degree, len(vals))
	}
	r := fit.PolynomialRegression(xs, vals, nil, degree)
	return vec.Map(r.F, xs), nil
}

// ordinals returns 0, 1, …, n-1.
func ordinals(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
