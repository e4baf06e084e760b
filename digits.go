// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import (
	"math"

	"github.com/chewxy/math32"
)

// DigitCount64 returns the number of decimal digits in |Float64(x)|,
// which is the width of the exponent when x is printed in scientific
// notation. It returns 0 if x is zero, infinite, or NaN.
func DigitCount64(x float64) uint {
	_, d := WithDigitCount64(x)
	return d
}

// WithDigitCount64 returns [Float64] of x together with [DigitCount64],
// decomposing x only once. It returns 0, 0 if x is zero, infinite, or NaN.
func WithDigitCount64(x float64) (int, uint) {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, 0
	}
	e10 := Float64(x)
	return e10, uint(float64Tables().digits[absInt(e10)])
}

// DigitCount32 is the float32 version of [DigitCount64].
func DigitCount32(x float32) uint {
	_, d := WithDigitCount32(x)
	return d
}

// WithDigitCount32 is the float32 version of [WithDigitCount64].
func WithDigitCount32(x float32) (int, uint) {
	if x == 0 || math32.IsInf(x, 0) || math32.IsNaN(x) {
		return 0, 0
	}
	e10 := Float32(x)
	return e10, uint(float32Tables().digits[absInt(e10)])
}

// IntDigits returns the number of decimal digits in |n|, with 0
// having one digit. Exponents of float64 values are looked up in
// the digit table; anything larger is counted.
func IntDigits(n int) uint {
	if n == math.MinInt {
		n++ // same digit count as MaxInt
	}
	a := absInt(n)
	if t := float64Tables(); a < len(t.digits) {
		return uint(t.digits[a])
	}
	return uint(countDigits(a))
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
