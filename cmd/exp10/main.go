// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command exp10 prints the decimal exponents of floating-point
// values and checks the exponent tables against strconv.
package main

import (
	"cogentcore.org/exp10/base/logx"
	"cogentcore.org/exp10/cli"
	"cogentcore.org/exp10/cmd/exp10/cmd"
	"cogentcore.org/exp10/cmd/exp10/config"
)

func main() {
	logx.SetDefaultLogger()
	opts := cli.DefaultOptions("exp10", "Exp10 prints the decimal exponent and exponent digit count of floating-point values.")
	cli.Run(opts, &config.Config{}, cmd.Cmds()...)
}
