// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10

import "testing"

var (
	benchInputs64 = []float64{1.0, 10.0, 100.0, 1e10, 1e100, 0.1, 0.01, 1e-10, 1e-100}
	benchInputs32 = []float32{1.0, 10.0, 100.0, 1e10, 0.1, 0.01, 1e-10}

	benchResult int
)

func BenchmarkFloat64(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs64 {
			r += Float64(x)
		}
	}
	benchResult = r
}

func BenchmarkLog10Floor64(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs64 {
			r += Log10Floor64(x)
		}
	}
	benchResult = r
}

func BenchmarkFloat32(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs32 {
			r += Float32(x)
		}
	}
	benchResult = r
}

func BenchmarkLog10Floor32(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs32 {
			r += Log10Floor32(x)
		}
	}
	benchResult = r
}

func BenchmarkExp10Generic(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs64 {
			r += Exp10(x)
		}
	}
	benchResult = r
}

func BenchmarkWithDigitCount64(b *testing.B) {
	r := 0
	for b.Loop() {
		for _, x := range benchInputs64 {
			e, d := WithDigitCount64(x)
			r += e + int(d)
		}
	}
	benchResult = r
}

func BenchmarkSubnormal64(b *testing.B) {
	xs := []float64{5e-324, 1e-320, 2e-310}
	r := 0
	for b.Loop() {
		for _, x := range xs {
			r += Float64(x)
		}
	}
	benchResult = r
}
