// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import (
	"sort"
	"strconv"

	"github.com/aclements/go-moremath/stats"
)

// A Label identifies one bucket of a count series. It is either
// numeric (a period index such as a month or day number) or
// categorical (free text). The kind is fixed at construction and
// renderers dispatch on it when laying out an axis.
type Label struct {
	num     float64
	text    string
	numeric bool
}

// NumberLabel returns a numeric label.
func NumberLabel(n float64) Label {
	return Label{num: n, numeric: true}
}

// TextLabel returns a categorical label.
func TextLabel(s string) Label {
	return Label{text: s}
}

// IsNumber reports whether l is numeric.
func (l Label) IsNumber() bool { return l.numeric }

// Number returns the numeric value of l. It is 0 for categorical
// labels.
func (l Label) Number() float64 { return l.num }

// String returns the tick text for l. Numeric labels are truncated to
// integers, matching how period indexes are displayed.
func (l Label) String() string {
	if l.numeric {
		return strconv.Itoa(int(l.num))
	}
	return l.text
}

// A Bucket pairs a label with the count observed for it.
type Bucket struct {
	Label Label
	Count float64
}

// A CountSeries is an ordered sequence of labeled counts, the result
// of some external grouping such as accidents per month. Labels are
// expected to be unique; the series order is the caller's and is
// preserved by renderers that treat labels as categorical.
type CountSeries []Bucket

// NumberCounts builds a series of numeric labels from parallel label
// and count slices. It panics if the slices have different lengths.
func NumberCounts(labels, counts []float64) CountSeries {
	if len(labels) != len(counts) {
		panic("timeplot: mismatched label and count lengths")
	}
	s := make(CountSeries, len(labels))
	for i, l := range labels {
		s[i] = Bucket{Label: NumberLabel(l), Count: counts[i]}
	}
	return s
}

// TextCounts builds a series of categorical labels from parallel
// label and count slices. It panics if the slices have different
// lengths.
func TextCounts(labels []string, counts []float64) CountSeries {
	if len(labels) != len(counts) {
		panic("timeplot: mismatched label and count lengths")
	}
	s := make(CountSeries, len(labels))
	for i, l := range labels {
		s[i] = Bucket{Label: TextLabel(l), Count: counts[i]}
	}
	return s
}

// Values returns the counts in series order.
func (s CountSeries) Values() []float64 {
	vals := make([]float64, len(s))
	for i, b := range s {
		vals[i] = b.Count
	}
	return vals
}

// AllNumeric reports whether every label in s is numeric. It is
// vacuously true for an empty series. A series with any categorical
// label lays out as categorical.
func (s CountSeries) AllNumeric() bool {
	for _, b := range s {
		if !b.Label.IsNumber() {
			return false
		}
	}
	return true
}

// Mean returns the arithmetic mean of the counts. It is NaN for an
// empty series; renderers reject empty input before calling it.
func (s CountSeries) Mean() float64 {
	return stats.Mean(s.Values())
}

// sortedByNumber returns a copy of s ordered by ascending numeric
// label. It must only be called when AllNumeric holds.
func (s CountSeries) sortedByNumber() CountSeries {
	t := make(CountSeries, len(s))
	copy(t, s)
	sort.Slice(t, func(i, j int) bool {
		return t[i].Label.Number() < t[j].Label.Number()
	})
	return t
}

// A YearSeries names one count series for overlay charts. Year is the
// legend text, conventionally a year like "2016".
type YearSeries struct {
	Year   string
	Counts CountSeries
}
