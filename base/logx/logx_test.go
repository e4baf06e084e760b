// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(NewHandler(&b, slog.LevelInfo))
	l.Debug("hidden")
	l.Info("built tables", "width", "float64", "entries", 2048)
	l.Warn("careful")

	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "built tables")
	assert.Contains(t, out, "width=float64")
	assert.Contains(t, out, "entries=2048")
	assert.Contains(t, out, "careful")
	assert.NotContains(t, out, "time=")
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	defer SetLevel(old)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	SetLevel(slog.LevelError)
	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelWarn))
	slog.Error("this is error")
}
