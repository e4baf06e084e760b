// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelVar is the leveler shared by all handlers made with
// [SetDefaultLogger], so that changes to [UserLevel] through
// [SetLevel] apply immediately.
var levelVar slog.LevelVar

// SetLevel sets [UserLevel] and updates the level of the
// default logger installed by [SetDefaultLogger].
func SetLevel(level slog.Level) {
	UserLevel = level
	levelVar.Set(level)
}

// NewHandler returns a new text [slog.Handler] writing to w that
// only shows messages at or above the given leveler, with the
// level names colored for the terminal (if any) behind w.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{} // omit for terminal output
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lv.String()).Foreground(LevelColor(out, lv)).String())
			}
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(out *termenv.Output, level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return out.Color("1") // red
	case level >= slog.LevelWarn:
		return out.Color("3") // yellow
	case level >= slog.LevelInfo:
		return out.Color("4") // blue
	default:
		return out.Color("8") // gray
	}
}

// SetDefaultLogger sets the default logger to a colored text
// logger writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	levelVar.Set(UserLevel)
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &levelVar)))
}
