// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitCount64(t *testing.T) {
	assert.Equal(t, uint(1), DigitCount64(1))
	assert.Equal(t, uint(1), DigitCount64(10))
	assert.Equal(t, uint(1), DigitCount64(100))
	assert.Equal(t, uint(2), DigitCount64(1e10))
	assert.Equal(t, uint(2), DigitCount64(1e99))
	assert.Equal(t, uint(3), DigitCount64(1e100))
	assert.Equal(t, uint(1), DigitCount64(1e-9))
	assert.Equal(t, uint(2), DigitCount64(1e-10))
	assert.Equal(t, uint(3), DigitCount64(1e-200))
	assert.Equal(t, uint(3), DigitCount64(math.SmallestNonzeroFloat64))
	assert.Equal(t, uint(3), DigitCount64(-math.MaxFloat64))
}

func TestDigitCount32(t *testing.T) {
	assert.Equal(t, uint(1), DigitCount32(1))
	assert.Equal(t, uint(1), DigitCount32(10))
	assert.Equal(t, uint(2), DigitCount32(1e10))
	assert.Equal(t, uint(1), DigitCount32(1e-9))
	assert.Equal(t, uint(2), DigitCount32(1e-10))
	assert.Equal(t, uint(2), DigitCount32(1e-20))
	assert.Equal(t, uint(2), DigitCount32(math.SmallestNonzeroFloat32))
}

func TestDigitCountSpecial(t *testing.T) {
	for _, x := range []float64{0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.Equal(t, uint(0), DigitCount64(x), "%g", x)
		e, d := WithDigitCount64(x)
		assert.Equal(t, 0, e)
		assert.Equal(t, uint(0), d)

		assert.Equal(t, uint(0), DigitCount32(float32(x)), "%g", x)
		e, d = WithDigitCount32(float32(x))
		assert.Equal(t, 0, e)
		assert.Equal(t, uint(0), d)
	}
}

func TestWithDigitCount(t *testing.T) {
	tests := []struct {
		x      float64
		e10    int
		digits uint
	}{
		{1, 0, 1},
		{10, 1, 1},
		{1e10, 10, 2},
		{1e100, 100, 3},
		{1e-10, -10, 2},
		{1e-200, -200, 3},
	}
	for _, test := range tests {
		e, d := WithDigitCount64(test.x)
		assert.Equal(t, test.e10, e, "%g", test.x)
		assert.Equal(t, test.digits, d, "%g", test.x)
	}

	tests32 := []struct {
		x      float32
		e10    int
		digits uint
	}{
		{1, 0, 1},
		{10, 1, 1},
		{1e10, 10, 2},
		{1e-10, -10, 2},
		{1e-20, -20, 2},
	}
	for _, test := range tests32 {
		e, d := WithDigitCount32(test.x)
		assert.Equal(t, test.e10, e, "%g", test.x)
		assert.Equal(t, test.digits, d, "%g", test.x)
	}
}

// TestDigitCountConsistent checks that the combined and separate
// calls agree with each other and with the printed exponent.
func TestDigitCountConsistent(t *testing.T) {
	for e := minExp10Float64; e <= maxExp10Float64; e++ {
		x, _ := Pow10Float64(e)
		x *= 3
		e10, d := WithDigitCount64(x)
		assert.Equal(t, Float64(x), e10)
		assert.Equal(t, DigitCount64(x), d)
		if x != 0 && !math.IsInf(x, 0) {
			assert.Equal(t, uint(len(strconv.Itoa(absInt(e10)))), d, "%g", x)
		}
	}
	for e := minExp10Float32; e <= maxExp10Float32; e++ {
		x, _ := Pow10Float32(e)
		e10, d := WithDigitCount32(x)
		assert.Equal(t, Float32(x), e10)
		assert.Equal(t, DigitCount32(x), d)
		assert.Equal(t, uint(len(strconv.Itoa(absInt(e10)))), d, "%g", x)
	}
}

func TestIntDigits(t *testing.T) {
	assert.Equal(t, uint(1), IntDigits(0))
	assert.Equal(t, uint(1), IntDigits(9))
	assert.Equal(t, uint(1), IntDigits(-9))
	assert.Equal(t, uint(2), IntDigits(10))
	assert.Equal(t, uint(3), IntDigits(-324))
	assert.Equal(t, uint(4), IntDigits(1000))
	assert.Equal(t, uint(7), IntDigits(-1234567))
	assert.Equal(t, uint(len(strconv.Itoa(math.MaxInt))), IntDigits(math.MaxInt))
	assert.Equal(t, uint(len(strconv.Itoa(math.MaxInt))), IntDigits(math.MinInt))
}
