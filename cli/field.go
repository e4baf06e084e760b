// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
)

// field represents a struct field in a configuration object.
type field struct {

	// Field is the reflect struct field object for this field.
	Field reflect.StructField

	// Value is the settable reflect value of this field.
	Value reflect.Value

	// Name is the fully qualified, nested name of this field (eg: A.B.C),
	// as it appears in code.
	Name string

	// Names contains all of the possible end-user flag names for this
	// field, in kebab-case. The unqualified name comes first.
	Names []string
}

// allCmds, when passed as the command to [fields], indicates
// to add all fields, regardless of their command association.
const allCmds = "*"

// fields returns all of the settable fields of the given pointer to
// a struct that apply to the given command, in declaration order.
// Fields with a `cmd:` tag only apply to the listed commands.
// Names used by more than one field are only kept in qualified form.
func fields(cfg any, cmd string) []*field {
	val := reflect.ValueOf(cfg)
	if val.Kind() != reflect.Pointer || val.IsNil() || val.Elem().Kind() != reflect.Struct {
		return nil
	}
	var res []*field
	addFields(val.Elem(), "", cmd, &res)

	counts := map[string]int{}
	for _, f := range res {
		for _, nm := range f.Names {
			counts[nm]++
		}
	}
	for _, f := range res {
		f.Names = slices.DeleteFunc(f.Names, func(nm string) bool {
			return counts[nm] > 1 && !strings.Contains(nm, ".")
		})
	}
	return res
}

func addFields(val reflect.Value, path, cmd string, res *[]*field) {
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		if cmdtag, ok := f.Tag.Lookup("cmd"); ok && cmd != allCmds {
			if !slices.Contains(strings.Split(cmdtag, ","), cmd) {
				continue
			}
		}
		fv := val.Field(i)
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		if f.Type.Kind() == reflect.Struct && !isTextType(f.Type) {
			addFields(fv, name, cmd, res)
			continue
		}
		names := []string{strcase.ToKebab(f.Name)}
		if flag, ok := f.Tag.Lookup("flag"); ok && flag != "" {
			names = strings.Split(flag, ",")
		}
		if path != "" {
			names = append(names, kebabPath(name))
		}
		*res = append(*res, &field{Field: f, Value: fv, Name: name, Names: names})
	}
}

// kebabPath converts each element of the given dotted path to kebab-case.
func kebabPath(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		parts[i] = strcase.ToKebab(p)
	}
	return strings.Join(parts, ".")
}

// fieldByName returns the field with the given end-user flag name,
// which is matched after conversion to kebab-case.
func fieldByName(fs []*field, name string) *field {
	name = kebabPath(name)
	for _, f := range fs {
		if slices.Contains(f.Names, name) {
			return f
		}
	}
	return nil
}

// posArgField returns the field with a `posarg:"all"` tag, if any.
func posArgField(fs []*field) *field {
	for _, f := range fs {
		if f.Field.Tag.Get("posarg") == "all" {
			return f
		}
	}
	return nil
}
