// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/exp10/base/errors"
	"github.com/mattn/go-shellwords"
)

var (
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	durationType        = reflect.TypeFor[time.Duration]()
)

// isTextType returns whether pointers to the given type
// implement [encoding.TextUnmarshaler].
func isTextType(typ reflect.Type) bool {
	return reflect.PointerTo(typ).Implements(textUnmarshalerType)
}

// setValue sets the given settable value from the given string.
// A string slice is appended to with the words of the string,
// split as a shell would, so that one flag can give many values.
func setValue(v reflect.Value, s string) error {
	typ := v.Type()
	if isTextType(typ) {
		return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}
	if typ == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch typ.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, typ.Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, typ.Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if typ.Elem().Kind() != reflect.String {
			return errors.Errorf("unsupported slice type %v", typ)
		}
		words, err := shellwords.Parse(s)
		if err != nil {
			return err
		}
		for _, w := range words {
			v.Set(reflect.Append(v, reflect.ValueOf(w).Convert(typ.Elem())))
		}
	default:
		return errors.Errorf("unsupported field type %v", typ)
	}
	return nil
}
