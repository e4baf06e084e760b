// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/exp10/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, "float64", c.Width)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, 1000000, c.Verify.Samples)
	assert.Equal(t, 8, c.Verify.Workers)
	assert.Equal(t, uint64(1), c.Verify.Seed)
	assert.Equal(t, 10, c.Verify.MaxReports)
	assert.False(t, c.Verify.Exhaustive)
	assert.Equal(t, 1000000, c.Bench.Iterations)
}

func TestFloatFormat(t *testing.T) {
	c := &Config{Width: "float32"}
	f, err := c.FloatFormat()
	require.NoError(t, err)
	assert.Equal(t, 32, f.Bits)

	c.Width = "float64"
	f, err = c.FloatFormat()
	require.NoError(t, err)
	assert.Equal(t, 64, f.Bits)

	c.Width = "double"
	_, err = c.FloatFormat()
	assert.ErrorContains(t, err, `unknown width "double"`)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&Config{}).LogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{Verbose: true}).LogLevel())
	assert.Equal(t, slog.LevelDebug, (&Config{VeryVerbose: true}).LogLevel())
	assert.Equal(t, slog.LevelError, (&Config{Quiet: true}).LogLevel())
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exp10.toml")
	require.NoError(t, os.WriteFile(file, []byte("Width = \"float32\"\n\n[Verify]\nWorkers = 2\n"), 0666))

	c := &Config{}
	opts := cli.DefaultOptions("exp10")
	opts.IncludePaths = []string{dir}
	cmds := []*cli.Cmd[*Config]{{Name: "exp", Root: true}, {Name: "verify"}}
	cmd, err := cli.Config(opts, c, []string{"verify", "-seed", "3"}, cmds...)
	require.NoError(t, err)
	assert.Equal(t, "verify", cmd)
	assert.Equal(t, "float32", c.Width)
	assert.Equal(t, 2, c.Verify.Workers)
	assert.Equal(t, uint64(3), c.Verify.Seed)
	assert.Equal(t, 1000000, c.Verify.Samples)
}
