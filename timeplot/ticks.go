// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import "gonum.org/v1/plot"

// fixedTicks puts a major tick at each given position, in the spirit
// of plt.xticks. Positions outside the axis range are dropped.
type fixedTicks struct {
	pos    []float64
	labels []string
}

var _ plot.Ticker = fixedTicks{}

func (t fixedTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, p := range t.pos {
		if p < min || p > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: p, Label: t.labels[i]})
	}
	return ticks
}
