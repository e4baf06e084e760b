// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exp10_test

import (
	"fmt"
	"math"

	"cogentcore.org/exp10"
)

func ExampleFloat64() {
	fmt.Println(exp10.Float64(999))
	fmt.Println(exp10.Float64(1000))
	fmt.Println(exp10.Float64(-0.01))
	fmt.Println(exp10.Float64(math.SmallestNonzeroFloat64))
	// Output:
	// 2
	// 3
	// -2
	// -324
}

func ExampleWithDigitCount64() {
	e, d := exp10.WithDigitCount64(6.02214076e23)
	fmt.Println(e, d)
	e, d = exp10.WithDigitCount64(1e-200)
	fmt.Println(e, d)
	// Output:
	// 23 2
	// -200 3
}

func ExampleExp10() {
	fmt.Println(exp10.Exp10(float32(0.01)), exp10.Exp10(0.01))
	fmt.Println(exp10.Exp10(math.Inf(1)), exp10.Exp10(0.0))
	// Output:
	// -2 -2
	// 0 0
}
