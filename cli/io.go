// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"cogentcore.org/exp10/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// includer is implemented by config objects with a list of other
// config files to read before their own file.
type includer interface {
	// IncludesPtr returns a pointer to the Includes []string field
	// containing file(s) to include before processing the current config file.
	IncludesPtr() *[]string
}

// maxIncludeDepth bounds the nesting of included config files.
const maxIncludeDepth = 10

// OpenTOML reads the given config object from the given TOML file,
// which is looked up on the given paths unless it is absolute. Fields
// that are not in the file keep their current values.
func OpenTOML(cfg any, file string, paths ...string) error {
	fn, ok := findFileOnPaths(paths, file)
	if !ok {
		return errors.Errorf("config file %q not found on paths %v", file, paths)
	}
	f, err := os.Open(fn)
	if err != nil {
		return errors.Wrap(err)
	}
	defer f.Close()
	if err := toml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("error reading config file %q: %w", fn, err)
	}
	return nil
}

// SaveTOML writes the given config object to the given TOML file.
func SaveTOML(cfg any, file string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(os.WriteFile(file, b, 0666))
}

// openWithIncludes reads the config struct from the given config file
// using the given options, looking on [Options.IncludePaths] for the file.
// It opens any Includes specified in the given config file first, in the
// natural include order, so that includers overwrite included settings.
// It is equivalent to [OpenTOML] if there are no Includes.
func openWithIncludes(opts *Options, cfg any, file string, depth int) error {
	err := OpenTOML(cfg, file, opts.IncludePaths...)
	if err != nil {
		return err
	}
	inc, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs := slices.Clone(*inc.IncludesPtr())
	if len(incs) == 0 {
		return nil
	}
	if depth >= maxIncludeDepth {
		return errors.Errorf("config includes nested more than %d deep at %q", maxIncludeDepth, file)
	}
	for _, f := range incs {
		*inc.IncludesPtr() = nil
		if err := openWithIncludes(opts, cfg, f, depth+1); err != nil {
			return err
		}
	}
	// reopen original so that it takes precedence
	err = OpenTOML(cfg, file, opts.IncludePaths...)
	*inc.IncludesPtr() = incs
	return err
}

// findFileOnPaths returns the first existing file with the given name
// on the given paths. An absolute name, or one with no paths, is used as is.
// A leading ~ in the name or the paths is the home directory.
func findFileOnPaths(paths []string, file string) (string, bool) {
	file = expandHome(file)
	if filepath.IsAbs(file) || len(paths) == 0 {
		_, err := os.Stat(file)
		return file, err == nil
	}
	for _, p := range paths {
		fn := filepath.Join(expandHome(p), file)
		if _, err := os.Stat(fn); err == nil {
			return fn, true
		}
	}
	return "", false
}

// expandHome returns the path with a leading ~ replaced by the
// home directory, or the path unchanged if that fails.
func expandHome(path string) string {
	ex, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return ex
}
