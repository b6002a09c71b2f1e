// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeplot

import "time"

// monthAbbr[1..12] hold the three-letter month abbreviations; slot 0
// is empty so month numbers index directly.
var monthAbbr [13]string

func init() {
	for m := time.January; m <= time.December; m++ {
		monthAbbr[m] = m.String()[:3]
	}
}

// MonthAbbr returns the three-letter abbreviation for month, where
// 1 is January and 12 is December. Month 0 returns the empty string
// (the table keeps an empty slot so month numbers index directly);
// any other month outside [1, 12] panics with an index error.
func MonthAbbr(month int) string {
	return monthAbbr[month]
}
