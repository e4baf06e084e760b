// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Debug is whether to include the caller stack in the
// string form of errors created by [Wrap].
var Debug = false

// callers returns the stack of the caller of the exported
// constructor, as short "file:line" strings.
func callers() []string {
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var res []string
	for {
		frame, more := frames.Next()
		// Stop unwinding when we enter package runtime or test,
		// as we only care about errors in the program.
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		if isConstructor(frame.Function) {
			if !more {
				break
			}
			continue
		}
		res = append(res, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line))
		if !more {
			break
		}
	}
	return res
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d %s", filepath.Base(file), line, runtime.FuncForPC(pc).Name())
}

func isConstructor(fn string) bool {
	for _, c := range []string{"errors.Wrap", "errors.New", "errors.Errorf"} {
		if strings.HasSuffix(fn, c) {
			return true
		}
	}
	return false
}
