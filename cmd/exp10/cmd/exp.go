// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/exp10"
	"cogentcore.org/exp10/base/errors"
	"cogentcore.org/exp10/cmd/exp10/config"
)

// Result is the report on one value.
type Result struct {

	// Input is the value as given.
	Input string `json:"input" yaml:"input" toml:"input"`

	// Value is the shortest form of the parsed value.
	Value string `json:"value" yaml:"value" toml:"value"`

	// Width is the float type the value was parsed as.
	Width string `json:"width" yaml:"width" toml:"width"`

	// Exp10 is the decimal exponent of the value.
	Exp10 int `json:"exp10" yaml:"exp10" toml:"exp10"`

	// Digits is the number of digits of the decimal exponent.
	Digits uint `json:"digits" yaml:"digits" toml:"digits"`
}

// Exp prints the decimal exponent and exponent digit count
// of each of the configured values.
func Exp(c *config.Config) error {
	return ExpTo(c, os.Stdout)
}

// ExpTo is [Exp] writing to the given writer.
func ExpTo(c *config.Config, w io.Writer) error {
	f, err := c.FloatFormat()
	if err != nil {
		return err
	}
	if len(c.Values) == 0 {
		return errors.New("no values given")
	}
	res := make([]Result, 0, len(c.Values))
	for _, v := range c.Values {
		r, err := Evaluate(v, f)
		if err != nil {
			return err
		}
		res = append(res, r)
	}
	return WriteResults(w, c.Format, res)
}

// Evaluate parses the given value as the given float format and
// returns its [Result]. Values out of range become infinities or
// zero, with a warning.
func Evaluate(v string, f *exp10.Format) (Result, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(v), f.Bits)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return Result{}, errors.Errorf("invalid value %q: %w", v, err)
		}
		slog.Warn("value out of range", "value", v, "width", f.Name, "parsed", x)
	}
	r := Result{Input: v, Value: strconv.FormatFloat(x, 'g', -1, f.Bits), Width: f.Name}
	if f.Bits == 32 {
		r.Exp10, r.Digits = exp10.WithDigitCount32(float32(x))
	} else {
		r.Exp10, r.Digits = exp10.WithDigitCount64(x)
	}
	return r, nil
}
