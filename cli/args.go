// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"slices"
	"strings"

	"cogentcore.org/exp10/base/errors"
)

// configFlags are the flags that name a config file;
// they are handled by [Config] and skipped by [SetFromArgs].
var configFlags = []string{"config", "cfg"}

// SetFromArgs sets the fields of the given config object that apply
// to the given command from the given flag arguments, and returns
// the positional arguments. Flags have the form -name, --name,
// -name=value, or -name value; a bool flag without "=value" is set
// to true. Flag names are matched in kebab-case, so -VeryVerbose,
// -very_verbose, and -very-verbose are all the same. Everything
// after a "--" argument is positional. If the config object has a
// field with a `posarg:"all"` tag, the positional arguments are
// also set on that field.
func SetFromArgs(cfg any, args []string, cmd string) ([]string, error) {
	fs := fields(cfg, cmd)
	var pos []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			pos = append(pos, args[i+1:]...)
			break
		}
		if len(arg) < 2 || arg[0] != '-' || isNumber(arg) {
			pos = append(pos, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		value, hasValue := "", false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			name, value, hasValue = name[:eq], name[eq+1:], true
		}
		if isConfigFlag(name) {
			if !hasValue {
				i++
			}
			continue
		}
		f := fieldByName(fs, name)
		if f == nil {
			return pos, errors.Errorf("unrecognized flag %q", arg)
		}
		if !hasValue {
			if f.Value.Kind() == reflect.Bool {
				value = "true"
			} else {
				if i+1 >= len(args) {
					return pos, errors.Errorf("flag %q needs a value", arg)
				}
				i++
				value = args[i]
			}
		}
		if err := setValue(f.Value, value); err != nil {
			return pos, errors.Errorf("flag %q: %w", arg, err)
		}
	}
	if pf := posArgField(fs); pf != nil && len(pos) > 0 {
		if err := setPosArgs(pf.Value, pos); err != nil {
			return pos, errors.Errorf("positional arguments %q: %w", pos, err)
		}
	}
	return pos, nil
}

// setPosArgs appends the positional arguments to a slice value,
// or sets a scalar value from the last of them.
func setPosArgs(v reflect.Value, pos []string) error {
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.String {
		return setValue(v, pos[len(pos)-1])
	}
	for _, p := range pos {
		v.Set(reflect.Append(v, reflect.ValueOf(p).Convert(v.Type().Elem())))
	}
	return nil
}

// configFile returns the value of the last config flag in args, if any.
func configFile(args []string) string {
	file := ""
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !isConfigFlag(name) {
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
			value = args[i]
		}
		file = value
	}
	return file
}

func isConfigFlag(name string) bool {
	return slices.Contains(configFlags, name)
}

// isNumber returns whether the argument is a negative number
// like -1.5e3 or -inf, which is positional rather than a flag.
func isNumber(arg string) bool {
	c := arg[1]
	if (c >= '0' && c <= '9') || c == '.' {
		return true
	}
	switch strings.ToLower(arg[1:]) {
	case "inf", "infinity", "nan":
		return true
	}
	return false
}
