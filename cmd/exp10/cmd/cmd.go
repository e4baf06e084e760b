// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the exp10 tool.
package cmd

import (
	"cogentcore.org/exp10/base/logx"
	"cogentcore.org/exp10/cli"
	"cogentcore.org/exp10/cmd/exp10/config"
)

// Cmds returns the commands of the exp10 tool.
func Cmds() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{
			Name: "exp",
			Doc:  "print the decimal exponent and exponent digit count of each value",
			Root: true,
			Func: withLogging(Exp),
		},
		{
			Name: "verify",
			Doc:  "check the exponents of random or all values against their shortest decimal form",
			Func: withLogging(Verify),
		},
		{
			Name: "bench",
			Doc:  "compare the speed of the table lookup with math.Log10",
			Func: withLogging(Bench),
		},
	}
}

// withLogging sets the log level from the config before running fun.
func withLogging(fun func(c *config.Config) error) func(c *config.Config) error {
	return func(c *config.Config) error {
		logx.SetLevel(c.LogLevel())
		return fun(c)
	}
}
