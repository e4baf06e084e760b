// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"cogentcore.org/exp10"
	"cogentcore.org/exp10/base/errors"
	"cogentcore.org/exp10/cmd/exp10/config"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many values a worker checks between
// looking for cancellation.
const checkEvery = 1 << 12

// VerifyReport is the outcome of [VerifyContext].
type VerifyReport struct {

	// Width is the float type that was checked.
	Width string

	// Checked is the number of values checked.
	Checked int64

	// Mismatches is the number of values whose exponent did
	// not match their shortest decimal form.
	Mismatches int64
}

// Verify checks the exponents of random or all values against
// their shortest decimal form.
func Verify(c *config.Config) error {
	rep, err := VerifyContext(context.Background(), c)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "checked %d %s values with %d workers: %d mismatches\n", rep.Checked, rep.Width, c.Verify.Workers, rep.Mismatches)
	if rep.Mismatches > 0 {
		return errors.Errorf("%d of %d %s values have the wrong exponent", rep.Mismatches, rep.Checked, rep.Width)
	}
	return nil
}

// VerifyContext runs the checks of [Verify] across [config.Verify.Workers]
// goroutines and returns the report. It stops early if ctx is done.
func VerifyContext(ctx context.Context, c *config.Config) (*VerifyReport, error) {
	f, err := c.FloatFormat()
	if err != nil {
		return nil, err
	}
	vc := &c.Verify
	workers := max(vc.Workers, 1)
	v := &verifier{maxReports: int64(vc.MaxReports)}

	g, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		switch {
		case f.Bits == 32 && vc.Exhaustive:
			// positive finite float32 bit patterns, split into
			// one contiguous range per worker
			const end = 0x7f800000
			lo := uint32(1 + uint64(i)*(end-1)/uint64(workers))
			hi := uint32(1 + uint64(i+1)*(end-1)/uint64(workers))
			g.Go(func() error { return v.rangeFloat32(ctx, lo, hi) })
		case f.Bits == 32:
			rnd := rand.New(rand.NewPCG(vc.Seed, uint64(i)))
			g.Go(func() error { return v.sampleFloat32(ctx, rnd, vc.Samples) })
		default:
			rnd := rand.New(rand.NewPCG(vc.Seed, uint64(i)))
			g.Go(func() error { return v.sampleFloat64(ctx, rnd, vc.Samples) })
		}
	}
	err = g.Wait()
	rep := &VerifyReport{Width: f.Name, Checked: v.checked.Load(), Mismatches: v.mismatches.Load()}
	slog.Info("verified", "width", rep.Width, "checked", rep.Checked, "mismatches", rep.Mismatches)
	return rep, err
}

// verifier accumulates the results of concurrent checks.
type verifier struct {
	checked    atomic.Int64
	mismatches atomic.Int64
	maxReports int64
}

func (v *verifier) sampleFloat64(ctx context.Context, rnd *rand.Rand, n int) error {
	checked := 0
	for i := range n {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				v.checked.Add(int64(checked))
				return err
			}
		}
		x := math.Float64frombits(rnd.Uint64() &^ (1 << 63))
		if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			continue
		}
		v.check(exp10.Float64(x), exp10.Float64(-x), x, 64)
		checked++
	}
	v.checked.Add(int64(checked))
	return nil
}

func (v *verifier) sampleFloat32(ctx context.Context, rnd *rand.Rand, n int) error {
	checked := 0
	for i := range n {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				v.checked.Add(int64(checked))
				return err
			}
		}
		x := math.Float32frombits(rnd.Uint32() &^ (1 << 31))
		if x == 0 || math.IsInf(float64(x), 0) || math.IsNaN(float64(x)) {
			continue
		}
		v.check(exp10.Float32(x), exp10.Float32(-x), float64(x), 32)
		checked++
	}
	v.checked.Add(int64(checked))
	return nil
}

// rangeFloat32 checks the float32 values with bit patterns in [lo, hi).
func (v *verifier) rangeFloat32(ctx context.Context, lo, hi uint32) error {
	checked := 0
	for b := lo; b < hi; b++ {
		if b%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				v.checked.Add(int64(checked))
				return err
			}
		}
		x := math.Float32frombits(b)
		v.check(exp10.Float32(x), exp10.Float32(-x), float64(x), 32)
		checked++
	}
	v.checked.Add(int64(checked))
	return nil
}

// check compares the exponents of x and -x with the exponent
// of the shortest decimal form of x.
func (v *verifier) check(e, eneg int, x float64, bits int) {
	want := ShortestExp10(x, bits)
	if e == want && eneg == want {
		return
	}
	if v.mismatches.Add(1) <= v.maxReports {
		slog.Error("exponent mismatch", "value", strconv.FormatFloat(x, 'g', -1, bits),
			"bits", fmt.Sprintf("%#x", bitsOf(x, bits)), "got", e, "gotNegative", eneg, "want", want)
	}
}

func bitsOf(x float64, bits int) uint64 {
	if bits == 32 {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(x)
}

// ShortestExp10 returns the decimal exponent of the shortest decimal
// that rounds to x at the given bit size, as printed by
// strconv.FormatFloat(x, 'e', -1, bits). It is 0 for zero and
// non-finite x.
func ShortestExp10(x float64, bits int) int {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	s := strconv.FormatFloat(x, 'e', -1, bits)
	e, _ := strconv.Atoi(s[strings.LastIndexByte(s, 'e')+1:])
	return e
}
