// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import "cogentcore.org/exp10/base/minmax"

// IEEE-754 binary64 layout.
const (
	expBits64         = 11
	bias64            = 1<<(expBits64-1) - 1
	mantissaBits64    = 52
	expMask64         = 1<<expBits64 - 1
	mantissaMask64    = 1<<mantissaBits64 - 1
	subnormalOffset64 = 1 - bias64 - mantissaBits64 // -1074

	// minExp10Float64 is the decimal exponent of the smallest
	// positive subnormal, 4.9e-324.
	minExp10Float64 = -324

	// maxExp10Float64 is the decimal exponent of the largest
	// finite value, 1.8e308.
	maxExp10Float64 = 308
)

// IEEE-754 binary32 layout.
const (
	expBits32         = 8
	bias32            = 1<<(expBits32-1) - 1
	mantissaBits32    = 23
	expMask32         = 1<<expBits32 - 1
	mantissaMask32    = 1<<mantissaBits32 - 1
	subnormalOffset32 = 1 - bias32 - mantissaBits32 // -149

	// minExp10Float32 is the decimal exponent of the smallest
	// positive subnormal, 1.4e-45.
	minExp10Float32 = -45

	// maxExp10Float32 is the decimal exponent of the largest
	// finite value, 3.4e38.
	maxExp10Float32 = 38
)

// Format describes the layout of an IEEE-754 binary floating-point
// format and the range of decimal exponents its finite nonzero
// values can have. The values are fixed properties of the format;
// use [Float64Format] and [Float32Format] rather than making new ones.
type Format struct {

	// Name is the Go type name of the format.
	Name string

	// Bits is the total width of the format in bits.
	Bits int

	// ExpBits is the width of the biased exponent field.
	ExpBits int

	// Bias is the value added to the true binary exponent
	// of a normal number before storing it in the exponent field.
	Bias int

	// MantissaBits is the number of explicitly stored mantissa bits.
	MantissaBits int

	// MantissaMask selects the mantissa bits of the bit pattern.
	MantissaMask uint64

	// SubnormalOffset is the binary exponent of the lowest mantissa
	// bit when the exponent field is zero, 1 - Bias - MantissaBits.
	SubnormalOffset int

	// Exp10 is the inclusive range of decimal exponents of the
	// finite nonzero values of the format.
	Exp10 minmax.Int
}

// Float64Format is the IEEE-754 binary64 (float64) format.
var Float64Format = Format{
	Name:            "float64",
	Bits:            64,
	ExpBits:         expBits64,
	Bias:            bias64,
	MantissaBits:    mantissaBits64,
	MantissaMask:    mantissaMask64,
	SubnormalOffset: subnormalOffset64,
	Exp10:           minmax.Int{Min: minExp10Float64, Max: maxExp10Float64},
}

// Float32Format is the IEEE-754 binary32 (float32) format.
var Float32Format = Format{
	Name:            "float32",
	Bits:            32,
	ExpBits:         expBits32,
	Bias:            bias32,
	MantissaBits:    mantissaBits32,
	MantissaMask:    mantissaMask32,
	SubnormalOffset: subnormalOffset32,
	Exp10:           minmax.Int{Min: minExp10Float32, Max: maxExp10Float32},
}

// String returns the name of the format.
func (f *Format) String() string {
	return f.Name
}

// ExpFields returns the number of distinct exponent field values, 2^ExpBits.
func (f *Format) ExpFields() int {
	return 1 << f.ExpBits
}

// MaxExp10Abs returns the largest magnitude of a decimal exponent
// of the format, which bounds the input of the digit count table.
func (f *Format) MaxExp10Abs() int {
	return f.Exp10.MaxAbs()
}

// FormatByName returns the format with the given name ("float64"
// or "float32"), and false if there is no such format.
func FormatByName(name string) (*Format, bool) {
	switch name {
	case Float64Format.Name:
		return &Float64Format, true
	case Float32Format.Name:
		return &Float32Format, true
	}
	return nil, false
}
