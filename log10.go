// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import (
	"math"

	"github.com/chewxy/math32"
)

// Log10Floor64 returns floor(log10(|x|)) computed with [math.Log10],
// with the same results as [Float64] for zero, infinite, and NaN x.
// It is the straightforward way of computing the exponent, kept for
// comparison: it is slower, and can be off by one next to powers of ten
// where the logarithm is not exact.
func Log10Floor64(x float64) int {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(x))))
}

// Log10Floor32 is the float32 version of [Log10Floor64].
func Log10Floor32(x float32) int {
	if x == 0 || math32.IsInf(x, 0) || math32.IsNaN(x) {
		return 0
	}
	return int(math32.Floor(math32.Log10(math32.Abs(x))))
}
