// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"image/color"
	"math"
	"testing"
)

func TestTrendFitLinear(t *testing.T) {
	// A degree-1 fit of perfectly linear data reproduces it.
	xs := []float64{0, 1, 2, 3}
	vals := []float64{0, 2, 4, 6}
	fitted, err := trendFit(xs, vals, 1)
	if err != nil {
		t.Fatal("unexpected trendFit error", err)
	}
	for i := range vals {
		if math.Abs(fitted[i]-vals[i]) > 1e-6 {
			t.Errorf("fitted[%d] = %v, want %v", i, fitted[i], vals[i])
		}
	}
}

func TestTrendFitUnderdetermined(t *testing.T) {
	xs := []float64{0, 1, 2}
	vals := []float64{1, 2, 3}
	if _, err := trendFit(xs, vals, 3); err == nil {
		t.Error("degree 3 fit of 3 points did not error")
	}
	if _, err := trendFit(xs, vals, -1); err == nil {
		t.Error("negative degree did not error")
	}
}

func TestTrendOverlay(t *testing.T) {
	years := []YearSeries{
		{Year: "2015", Counts: NumberCounts([]float64{1, 2, 3, 4, 5}, []float64{3, 1, 4, 1, 5})},
		{Year: "2016", Counts: NumberCounts([]float64{1, 2, 3, 4, 5}, []float64{2, 7, 1, 8, 2})},
	}
	ch, err := TrendOverlay(years, "t", "day", "count", true, 0, color.Black, Options{})
	if err != nil {
		t.Fatal("unexpected TrendOverlay error", err)
	}
	if ch.X.Tick.Label.Rotation == 0 {
		t.Error("x tick labels are not rotated")
	}
}

func TestTrendOverlayErrors(t *testing.T) {
	if _, err := TrendOverlay(nil, "t", "", "", false, 0, nil, Options{}); err == nil {
		t.Error("empty collection did not error")
	}

	years := []YearSeries{{Year: "2015", Counts: CountSeries{}}}
	if _, err := TrendOverlay(years, "t", "", "", false, 0, nil, Options{}); err == nil {
		t.Error("empty member series did not error")
	}

	// Too few points for the default degree.
	years = []YearSeries{{Year: "2015", Counts: NumberCounts([]float64{1, 2}, []float64{1, 2})}}
	if _, err := TrendOverlay(years, "t", "", "", true, 0, nil, Options{}); err == nil {
		t.Error("under-determined fit did not error")
	}
	// Fine without the fit.
	if _, err := TrendOverlay(years, "t", "", "", false, 0, nil, Options{}); err != nil {
		t.Error("unexpected TrendOverlay error", err)
	}
}
