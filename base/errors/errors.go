// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents an error with a base error and the
// stack of callers at the point it was created.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Base:  err,
		Stack: callers(),
	}
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. It is the equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace via [Wrap]. It is the equivalent of [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the error as a string. The stack is only
// included when [Debug] is on.
func (e *Error) Error() string {
	res := e.Base.Error()
	if Debug && len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is equivalent to [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is equivalent to [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is equivalent to [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
