// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"math"
	"reflect"
	"testing"
)

func TestAllNumeric(t *testing.T) {
	for _, test := range []struct {
		counts CountSeries
		want   bool
	}{
		{NumberCounts([]float64{1, 2, 3}, []float64{5, 7, 10}), true},
		{TextCounts([]string{"b", "a"}, []float64{1, 2}), false},

		// A single categorical label makes the whole series
		// categorical.
		{CountSeries{
			{NumberLabel(1), 5},
			{TextLabel("x"), 7},
		}, false},

		{CountSeries{}, true},
	} {
		if got := test.counts.AllNumeric(); got != test.want {
			t.Errorf("AllNumeric(%v) = %v, want %v", test.counts, got, test.want)
		}
	}
}

func TestMean(t *testing.T) {
	s := NumberCounts([]float64{3, 1, 2}, []float64{10, 5, 7})
	want := 22.0 / 3
	if got := s.Mean(); math.Abs(got-want) > 1e-12 {
		t.Errorf("Mean = %v, want %v", got, want)
	}

	if got := (CountSeries{}).Mean(); !math.IsNaN(got) {
		t.Errorf("Mean of empty series = %v, want NaN", got)
	}
}

func TestValues(t *testing.T) {
	s := TextCounts([]string{"b", "a"}, []float64{2, 1})
	if got, want := s.Values(), []float64{2, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestSortedByNumber(t *testing.T) {
	s := NumberCounts([]float64{3, 1, 2}, []float64{10, 5, 7})
	got := s.sortedByNumber()
	want := NumberCounts([]float64{1, 2, 3}, []float64{5, 7, 10})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedByNumber = %v, want %v", got, want)
	}
	// The receiver is left alone.
	if s[0].Label.Number() != 3 {
		t.Errorf("sortedByNumber mutated its receiver: %v", s)
	}
}

func TestLabelString(t *testing.T) {
	for _, test := range []struct {
		label Label
		want  string
	}{
		{NumberLabel(7), "7"},
		{NumberLabel(7.9), "7"}, // truncates, not rounds
		{TextLabel("Monday"), "Monday"},
	} {
		if got := test.label.String(); got != test.want {
			t.Errorf("Label.String() = %q, want %q", got, test.want)
		}
	}
}

func TestCountsCtorMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NumberCounts with mismatched lengths did not panic")
		}
	}()
	NumberCounts([]float64{1}, []float64{1, 2})
}
