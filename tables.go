// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import (
	"log/slog"
	"math"
	"strconv"
	"sync"

	"cogentcore.org/exp10/base/errors"
)

// tables holds the lookup tables for one floating-point format.
// They are built once on first use by [float64Tables] and
// [float32Tables] and never modified afterward.
type tables[F float32 | float64] struct {

	// exp2ToExp10 is indexed by the raw exponent field and holds
	// round((field - bias) * log10(2)), the estimated decimal
	// exponent of normal numbers with that field.
	exp2ToExp10 []int16

	// pow10 holds 10^e correctly rounded to F for every e
	// in the decimal exponent range of the format, at index e - min.
	pow10 []F

	// digits holds the number of decimal digits of i at index i,
	// for i up to the largest decimal exponent magnitude.
	digits []uint8
}

var (
	float64Tables = sync.OnceValue(func() *tables[float64] {
		return newTables[float64](&Float64Format)
	})

	float32Tables = sync.OnceValue(func() *tables[float32] {
		return newTables[float32](&Float32Format)
	})
)

// newTables builds the tables for the given format. This is the only
// place where transcendental functions are evaluated.
func newTables[F float32 | float64](f *Format) *tables[F] {
	t := &tables[F]{
		exp2ToExp10: make([]int16, f.ExpFields()),
		pow10:       make([]F, f.Exp10.Len()),
		digits:      make([]uint8, f.MaxExp10Abs()+1),
	}
	for field := range t.exp2ToExp10 {
		t.exp2ToExp10[field] = int16(estimateExp10(field - f.Bias))
	}
	for i := range t.pow10 {
		e := f.Exp10.Min + i
		// ParseFloat rounds 1eN correctly to the target width,
		// which math.Pow10 does not guarantee.
		p := errors.Must1(strconv.ParseFloat("1e"+strconv.Itoa(e), f.Bits))
		t.pow10[i] = F(p)
	}
	for i := range t.digits {
		t.digits[i] = uint8(countDigits(i))
	}
	slog.Debug("exp10: built tables", "format", f.Name,
		"exponentFields", len(t.exp2ToExp10), "powers", len(t.pow10), "digits", len(t.digits))
	return t
}

// estimateExp10 returns round(exp2 * log10(2)), which is either
// floor(log10(x)) or one more than it for any x in [2^exp2, 2^(exp2+1)).
func estimateExp10(exp2 int) int {
	return int(math.Round(float64(exp2) * math.Log10(2)))
}

// countDigits returns the number of decimal digits of n >= 0,
// with 0 having one digit.
func countDigits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
