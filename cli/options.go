// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"
	"os"
)

// Options contains the options passed to cli
// that control its behavior.
type Options struct {

	// AppName is the internal name of the app
	// (typically in kebab-case) (see also [Options.AppTitle])
	AppName string

	// AppTitle is the user-visible name of the app
	// (typically in Title Case) (see also [Options.AppName])
	AppTitle string

	// AppAbout is the description of the app
	AppAbout string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// PrintSuccess is whether to log a message indicating
	// that a command was successful after it is run.
	PrintSuccess bool

	// DefaultFiles are the default configuration file paths,
	// used when no -config flag is given.
	DefaultFiles []string

	// IncludePaths is a list of file paths to try for finding config files
	// specified in the Includes field or via the -config or -cfg flags.
	// The default is the current directory '.', 'configs', and
	// '~/.config/' followed by the app name.
	IncludePaths []string

	// NeedConfigFile indicates whether a configuration file
	// must be found for the command to run.
	NeedConfigFile bool

	// Out is where usage is printed; if nil, [os.Stdout] is used.
	Out io.Writer
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and optional app about info.
func DefaultOptions(appName string, appAbout ...string) *Options {
	o := &Options{
		AppName:      appName,
		AppTitle:     appName,
		Fatal:        true,
		DefaultFiles: []string{appName + ".toml"},
		IncludePaths: []string{".", "configs", "~/.config/" + appName},
	}
	if len(appAbout) > 0 {
		o.AppAbout = appAbout[0]
	}
	return o
}

// Stdout returns [Options.Out] or [os.Stdout] if it is nil.
func (o *Options) Stdout() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}
