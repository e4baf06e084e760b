// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"log/slog"
	"strings"

	"cogentcore.org/exp10/base/errors"
)

// Config sets up the given config object, which must be a pointer to
// a struct, for the command named by the first argument (or the root
// command if the first argument is a flag or there are no arguments),
// and returns the name of that command. The steps are:
//   - set fields from `default:` tags with [SetFromDefaults]
//   - read the config file given by a -config or -cfg flag, or else the
//     first of [Options.DefaultFiles] found on [Options.IncludePaths],
//     including any files it names in an Includes field
//   - set fields from the remaining arguments with [SetFromArgs]
func Config[T any](opts *Options, cfg T, args []string, cmds ...*Cmd[T]) (string, error) {
	var errs []error
	if err := SetFromDefaults(cfg); err != nil {
		errs = append(errs, err)
	}

	cmd := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") && CmdByName(cmds, args[0]) != nil {
		cmd = args[0]
		args = args[1:]
	}

	if file := configFile(args); file != "" {
		if err := openWithIncludes(opts, cfg, file, 0); err != nil {
			errs = append(errs, err)
		}
	} else {
		found := false
		for _, file := range opts.DefaultFiles {
			if _, ok := findFileOnPaths(opts.IncludePaths, file); !ok {
				continue
			}
			found = true
			slog.Debug("reading config file", "file", file)
			if err := openWithIncludes(opts, cfg, file, 0); err != nil {
				errs = append(errs, err)
			}
			break
		}
		if !found && opts.NeedConfigFile {
			errs = append(errs, errors.Errorf("no config file found; tried %v on paths %v", opts.DefaultFiles, opts.IncludePaths))
		}
	}

	if cmd == "" {
		if root := CmdByName(cmds, ""); root != nil {
			cmd = root.Name
		}
	}
	if _, err := SetFromArgs(cfg, args, cmd); err != nil {
		errs = append(errs, err)
	}
	return cmd, errors.Join(errs...)
}
