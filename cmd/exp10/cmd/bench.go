// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"cogentcore.org/exp10"
	"cogentcore.org/exp10/cmd/exp10/config"
)

var (
	benchInputs64 = []float64{1.0, 10.0, 100.0, 1e10, 1e100, 0.1, 0.01, 1e-10, 1e-100}
	benchInputs32 = []float32{1.0, 10.0, 100.0, 1e10, 0.1, 0.01, 1e-10}
)

// BenchResult is the timing of one way of computing exponents.
type BenchResult struct {
	Name    string
	Calls   int
	Elapsed time.Duration

	// Sum is the sum of all of the exponents, so that
	// the calls can not be optimized away.
	Sum int
}

// NsPerOp returns the average time of one call in nanoseconds.
func (r *BenchResult) NsPerOp() float64 {
	if r.Calls == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Calls)
}

// Bench compares the speed of the table lookup with
// the floor of [math.Log10] for the configured width.
func Bench(c *config.Config) error {
	return BenchTo(c, os.Stdout)
}

// BenchTo is [Bench] writing to the given writer.
func BenchTo(c *config.Config, w io.Writer) error {
	f, err := c.FloatFormat()
	if err != nil {
		return err
	}
	n := max(c.Bench.Iterations, 1)
	var res []BenchResult
	var differ int
	if f.Bits == 32 {
		res = []BenchResult{
			benchmark("Float32", n, benchInputs32, exp10.Float32),
			benchmark("Log10Floor32", n, benchInputs32, exp10.Log10Floor32),
		}
		for _, x := range benchInputs32 {
			if exp10.Float32(x) != exp10.Log10Floor32(x) {
				differ++
			}
		}
	} else {
		res = []BenchResult{
			benchmark("Float64", n, benchInputs64, exp10.Float64),
			benchmark("Log10Floor64", n, benchInputs64, exp10.Log10Floor64),
		}
		for _, x := range benchInputs64 {
			if exp10.Float64(x) != exp10.Log10Floor64(x) {
				differ++
			}
		}
	}
	if differ > 0 {
		slog.Warn("table lookup and logarithm disagree", "width", f.Name, "inputs", differ)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCALLS\tNS/OP")
	for _, r := range res {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", r.Name, r.Calls, r.NsPerOp())
	}
	return tw.Flush()
}

// benchmark times n passes of fun over the inputs.
func benchmark[F float32 | float64](name string, n int, inputs []F, fun func(F) int) BenchResult {
	sum := 0
	start := time.Now()
	for range n {
		for _, x := range inputs {
			sum += fun(x)
		}
	}
	r := BenchResult{Name: name, Calls: n * len(inputs), Elapsed: time.Since(start), Sum: sum}
	slog.Debug("benchmarked", "name", name, "calls", r.Calls, "elapsed", r.Elapsed, "sum", sum)
	return r
}
