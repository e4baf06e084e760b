// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exp10 computes the decimal exponent floor(log10(|x|)) of
// float32 and float64 values, and the number of digits needed to print
// that exponent, without calling a logarithm.
//
// The binary exponent field of the value indexes a table of rounded
// estimates round(exp2 * log10(2)), which are at most one too high,
// and a single comparison against a table of powers of ten corrects
// the estimate. The powers of ten are correctly rounded to the width of
// the value, so the result is the exponent of the shortest decimal that
// rounds to the value, as printed by strconv.FormatFloat(x, 'e', -1, bits).
// For example, float32(0.01) is slightly below 0.01 but has exponent -2.
//
// Zero, infinities, and NaN all have exponent 0 and digit count 0.
// An exponent of 0 is therefore ambiguous between values in [1, 10)
// and those special values; callers that need to tell them apart must
// check for them directly.
//
// All tables are built once, on first use, and are safe for
// concurrent use.
package exp10

import (
	"math"
	"math/bits"

	"github.com/chewxy/math32"
)

// Float64 returns the decimal exponent of x, floor(log10(|x|)), in
// the range [-324, 308]. It returns 0 if x is zero, infinite, or NaN.
func Float64(x float64) int {
	ax := math.Abs(x)
	if ax == 0 || math.IsInf(ax, 0) || math.IsNaN(ax) {
		return 0
	}
	t := float64Tables()
	b := math.Float64bits(ax)
	field := (b >> mantissaBits64) & expMask64

	var e10 int
	if field == 0 {
		e10 = subnormalExp10Float64(b)
	} else {
		e10 = int(t.exp2ToExp10[field])
	}
	if e10 >= minExp10Float64 && e10 <= maxExp10Float64 && ax < t.pow10[e10-minExp10Float64] {
		e10--
	}
	return e10
}

// subnormalExp10Float64 returns the estimated decimal exponent of the
// subnormal float64 with the given bits, whose true binary exponent
// comes from the highest set mantissa bit.
//
//go:noinline
func subnormalExp10Float64(b uint64) int {
	m := b & mantissaMask64
	return estimateExp10(subnormalOffset64 + bits.Len64(m) - 1)
}

// Float32 returns the decimal exponent of x, floor(log10(|x|)), in
// the range [-45, 38]. It returns 0 if x is zero, infinite, or NaN.
func Float32(x float32) int {
	ax := math32.Abs(x)
	if ax == 0 || math32.IsInf(ax, 0) || math32.IsNaN(ax) {
		return 0
	}
	t := float32Tables()
	b := math32.Float32bits(ax)
	field := (b >> mantissaBits32) & expMask32

	var e10 int
	if field == 0 {
		e10 = subnormalExp10Float32(b)
	} else {
		e10 = int(t.exp2ToExp10[field])
	}
	if e10 >= minExp10Float32 && e10 <= maxExp10Float32 && ax < t.pow10[e10-minExp10Float32] {
		e10--
	}
	return e10
}

// subnormalExp10Float32 is the float32 version of [subnormalExp10Float64].
//
//go:noinline
func subnormalExp10Float32(b uint32) int {
	m := b & mantissaMask32
	return estimateExp10(subnormalOffset32 + bits.Len32(m) - 1)
}

// Pow10Float64 returns 10^e correctly rounded to float64, from the
// same table used by [Float64]. It returns 0, false if e is outside
// the decimal exponent range of float64.
func Pow10Float64(e int) (float64, bool) {
	if !Float64Format.Exp10.InRange(e) {
		return 0, false
	}
	return float64Tables().pow10[e-minExp10Float64], true
}

// Pow10Float32 returns 10^e correctly rounded to float32, from the
// same table used by [Float32]. It returns 0, false if e is outside
// the decimal exponent range of float32.
func Pow10Float32(e int) (float32, bool) {
	if !Float32Format.Exp10.InRange(e) {
		return 0, false
	}
	return float32Tables().pow10[e-minExp10Float32], true
}
