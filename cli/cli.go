// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli runs commands configured by a struct. Fields of
// the struct get their initial values from `default:` tags, then
// from a TOML config file, and finally from command-line flags.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"cogentcore.org/exp10/base/errors"
)

// Run runs the command named by the first positional argument in
// [os.Args] on the given config object, which must be a pointer to
// a struct. The config object is set up with [Config] first. If no
// command is given, the root command is run. If the command is "help"
// or one of the -h, -help, or --help flags is given, Run prints [Usage].
// If [Options.Fatal] is on, errors are logged and the program exits.
func Run[T any](opts *Options, cfg T, cmds ...*Cmd[T]) error {
	err := RunArgs(opts, cfg, os.Args[1:], cmds...)
	if err != nil && opts.Fatal {
		slog.Error(err.Error())
		os.Exit(1)
	}
	return err
}

// RunArgs is like [Run], but it takes the arguments directly
// and never exits the program.
func RunArgs[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) error {
	if wantsHelp(args) {
		fmt.Fprintln(opts.Stdout(), Usage(opts, cfg, "", cmds...))
		return nil
	}
	cmd, err := Config(opts, cfg, args, cmds...)
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	return RunCmd(opts, cfg, cmd, cmds...)
}

// RunCmd runs the command with the given name on the given config
// object, which has already been set up. An empty name runs the root
// command; if there is none, [Usage] is printed.
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	c := CmdByName(cmds, cmd)
	if c == nil {
		if cmd == "" || cmd == "help" {
			fmt.Fprintln(opts.Stdout(), Usage(opts, cfg, "", cmds...))
			return nil
		}
		return errors.Errorf("unknown command %q", cmd)
	}
	slog.Debug("running command", "app", opts.AppName, "cmd", c.Name)
	err := c.Func(cfg)
	if err != nil {
		return fmt.Errorf("error running command %q: %w", c.Name, err)
	}
	if opts.PrintSuccess {
		slog.Info("command succeeded", "cmd", c.Name)
	}
	return nil
}

func wantsHelp(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	i := slices.Index(args, "--")
	if i >= 0 {
		args = args[:i]
	}
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "-h" || a == "-help" || a == "--help"
	})
}
