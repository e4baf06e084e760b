// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/exp10/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// results is the top-level table for TOML output,
// which can not be a bare array.
type results struct {
	Results []Result `toml:"results"`
}

// WriteResults writes the given results to w in the given format:
// text, json, yaml, or toml.
func WriteResults(w io.Writer, format string, res []Result) error {
	switch format {
	case "", "text":
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, "VALUE\tWIDTH\tEXP10\tDIGITS")
		for _, r := range res {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.Value, r.Width, r.Exp10, r.Digits)
		}
		return errors.Wrap(tw.Flush())
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return errors.Wrap(err)
		}
		return errors.Wrap(enc.Close())
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(results{Results: res}))
	}
	return errors.Errorf("unknown output format %q; must be text, json, yaml, or toml", format)
}
