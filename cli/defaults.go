// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"cogentcore.org/exp10/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	var errs []error
	for _, f := range fields(cfg, allCmds) {
		def, ok := f.Field.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setValue(f.Value, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: default %q: %w", f.Name, def, err))
		}
	}
	return errors.Log(errors.Join(errs...))
}
