// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io/fs"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil))

	err := Wrap(fs.ErrNotExist)
	var e *Error
	assert.True(t, As(err, &e))
	assert.NotEmpty(t, e.Stack)
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.Equal(t, fs.ErrNotExist.Error(), err.Error())
	assert.Same(t, err, Wrap(err))

	Debug = true
	defer func() { Debug = false }()
	assert.Contains(t, err.Error(), "errors_test.go")
}

func TestErrorf(t *testing.T) {
	err := Errorf("bad value %q: %w", "x", strconv.ErrSyntax)
	assert.True(t, Is(err, strconv.ErrSyntax))
	assert.Equal(t, `bad value "x": invalid syntax`, err.Error())
	assert.EqualError(t, New("plain"), "plain")
}

func TestLogMust(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Error(t, Log(New("logged")))
	assert.Equal(t, 3, Log1(strconv.Atoi("3")))
	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Equal(t, 0, Ignore1(strconv.Atoi("x")))

	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("panic")) })
	assert.Equal(t, 5, Must1(strconv.Atoi("5")))
	assert.Panics(t, func() { Must1(strconv.Atoi("y")) })
}

func TestCallerInfo(t *testing.T) {
	info := func() string { return CallerInfo() }()
	assert.Contains(t, info, "errors_test.go")
}
