// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"
)

// Usage returns the usage string for the given config object and
// commands. If cmd is not empty, only the flags that apply to that
// command are listed.
func Usage[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) string {
	var b strings.Builder
	b.WriteString(opts.AppTitle)
	if opts.AppAbout != "" {
		b.WriteString(": " + opts.AppAbout)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Usage: %s [command] [flags] [arguments]\n", opts.AppName)

	if len(cmds) > 0 {
		b.WriteString("\nCommands:\n")
		for _, c := range cmds {
			name := c.Name
			if c.Root {
				name += " (default)"
			}
			fmt.Fprintf(&b, "  %-16s %s\n", name, c.Doc)
		}
		fmt.Fprintf(&b, "  %-16s %s\n", "help", "show this usage")
	}

	b.WriteString("\nFlags:\n")
	b.WriteString("  -help, -h\n\tshow available flags and exit\n")
	b.WriteString("  -config, -cfg\n\tthe TOML file to load the configuration from\n")
	if cmd == "" {
		cmd = allCmds
	}
	for _, f := range fields(cfg, cmd) {
		if f.Field.Tag.Get("posarg") == "all" {
			continue
		}
		b.WriteString("  -" + strings.Join(f.Names, ", -"))
		b.WriteString("\n")
		desc := f.Field.Tag.Get("desc")
		def, hasDef := f.Field.Tag.Lookup("default")
		if desc == "" && !hasDef {
			continue
		}
		b.WriteString("\t" + desc)
		if hasDef {
			fmt.Fprintf(&b, " (default %s)", def)
		}
		b.WriteString("\n")
	}
	return b.String()
}
