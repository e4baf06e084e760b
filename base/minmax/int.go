// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds inclusive Min and Max
// integer bounds.
package minmax

// Int represents an inclusive min / max range for int values.
type Int struct {
	Min int
	Max int
}

// Set sets the min and max values
func (mr *Int) Set(mn, mx int) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max
func (mr Int) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr Int) InRange(val int) bool {
	return val >= mr.Min && val <= mr.Max
}

// IsLow tests whether value is lower than the minimum
func (mr Int) IsLow(val int) bool {
	return val < mr.Min
}

// IsHigh tests whether value is higher than the maximum
func (mr Int) IsHigh(val int) bool {
	return val > mr.Max
}

// Len returns the number of values in the range, Max - Min + 1,
// or 0 if the range is not valid.
func (mr Int) Len() int {
	if !mr.IsValid() {
		return 0
	}
	return mr.Max - mr.Min + 1
}

// Index returns the offset of val from Min, suitable for indexing
// a slice of length [Int.Len]. It does not check the range.
func (mr Int) Index(val int) int {
	return val - mr.Min
}

// MaxAbs returns the larger of the absolute values of Min and Max.
func (mr Int) MaxAbs() int {
	return max(abs(mr.Min), abs(mr.Max))
}

// Clamp returns the value clipped to the range.
func (mr Int) Clamp(val int) int {
	return min(max(val, mr.Min), mr.Max)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *Int) FitValInRange(val int) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
