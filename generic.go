// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Exp10 returns the decimal exponent of x for any float type,
// calling [Float32] or [Float64] according to the width of F.
// The choice depends only on F, not on a run-time type switch,
// but hot loops over a known type can call those directly.
func Exp10[F constraints.Float](x F) int {
	if unsafe.Sizeof(x) == 4 {
		return Float32(float32(x))
	}
	return Float64(float64(x))
}

// DigitCount returns the number of decimal digits in |Exp10(x)|,
// or 0 if x is zero, infinite, or NaN.
func DigitCount[F constraints.Float](x F) uint {
	if unsafe.Sizeof(x) == 4 {
		return DigitCount32(float32(x))
	}
	return DigitCount64(float64(x))
}

// WithDigitCount returns [Exp10] and [DigitCount] of x together.
func WithDigitCount[F constraints.Float](x F) (int, uint) {
	if unsafe.Sizeof(x) == 4 {
		return WithDigitCount32(float32(x))
	}
	return WithDigitCount64(float64(x))
}

// FormatOf returns the [Format] of the float type F.
func FormatOf[F constraints.Float]() *Format {
	var x F
	if unsafe.Sizeof(x) == 4 {
		return &Float32Format
	}
	return &Float64Format
}
