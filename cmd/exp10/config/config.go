// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the exp10 tool.
package config

import (
	"log/slog"

	"cogentcore.org/exp10"
	"cogentcore.org/exp10/base/errors"
	"cogentcore.org/exp10/base/logx"
)

// Config is the main config struct
// that contains all of the configuration
// options for the exp10 tool.
type Config struct {

	// Includes are other config files to read before this one.
	Includes []string

	// Width is the float type that values are parsed as: float64 or float32.
	Width string `flag:"w,width" default:"float64" desc:"the float type that values are parsed as: float64 or float32"`

	// Format is the output format: text, json, yaml, or toml.
	Format string `flag:"f,format" default:"text" desc:"the output format: text, json, yaml, or toml"`

	// Values are the values to report on; they are also
	// taken from the positional arguments.
	Values []string `posarg:"all" desc:"the values to report on"`

	// Verbose is whether to show info messages.
	Verbose bool `flag:"v,verbose" desc:"show info messages"`

	// VeryVerbose is whether to show debug messages.
	VeryVerbose bool `flag:"vv,very-verbose" desc:"show debug messages"`

	// Quiet is whether to only show errors.
	Quiet bool `flag:"q,quiet" desc:"only show errors"`

	// Verify contains the configuration options for the verify command.
	Verify Verify `cmd:"verify"`

	// Bench contains the configuration options for the bench command.
	Bench Bench `cmd:"bench"`
}

// Verify contains the configuration options for the verify command.
type Verify struct {

	// Samples is the number of random bit patterns to check per worker.
	Samples int `flag:"n,samples" default:"1000000" desc:"the number of random bit patterns to check per worker"`

	// Workers is the number of goroutines to check with.
	Workers int `default:"8" desc:"the number of goroutines to check with"`

	// Seed is the random seed.
	Seed uint64 `default:"1" desc:"the random seed"`

	// Exhaustive is whether to check every positive float32 instead
	// of random samples; it only applies with width float32.
	Exhaustive bool `desc:"check every positive float32 instead of random samples (width float32 only)"`

	// MaxReports is the largest number of mismatches to log.
	MaxReports int `default:"10" desc:"the largest number of mismatches to log"`
}

// Bench contains the configuration options for the bench command.
type Bench struct {

	// Iterations is the number of passes over the inputs.
	Iterations int `default:"1000000" desc:"the number of passes over the inputs"`
}

// IncludesPtr implements the config file includer interface.
func (c *Config) IncludesPtr() *[]string { return &c.Includes }

// FloatFormat returns the float format named by [Config.Width].
func (c *Config) FloatFormat() (*exp10.Format, error) {
	f, ok := exp10.FormatByName(c.Width)
	if !ok {
		return nil, errors.Errorf("unknown width %q; must be float64 or float32", c.Width)
	}
	return f, nil
}

// LogLevel returns the logging level selected by the verbosity flags.
func (c *Config) LogLevel() slog.Level {
	return logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}
