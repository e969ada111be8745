// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/yopt/pkg/yopt"
)

// RenderError writes an evaluation error for humans. Usage blocks are
// printed with the flag highlighted; every other invalid argument is
// printed on its own line in the error style.
func RenderError(w io.Writer, c Colorizer, err error) {
	if err == nil {
		return
	}
	var e *yopt.Error
	if !errors.As(err, &e) || e.Kind != yopt.KindInvalidArgument {
		fmt.Fprintln(w, c.Wrap(ErrorStyle, "Error: "+err.Error()))
		return
	}
	for _, cause := range e.Causes() {
		if errors.Is(cause, yopt.ErrUsage) {
			flag, usage, _ := strings.Cut(cause.Description, "\n\t")
			fmt.Fprintf(w, "%s\n\t%s\n", c.Wrap(FlagStyle, flag), usage)
			continue
		}
		fmt.Fprintln(w, c.Wrap(ErrorStyle, cause.Description))
	}
}

// RenderFlags writes a flag table: flag, default and usage columns.
func RenderFlags(w io.Writer, c Colorizer, flags []yopt.FlagInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range flags {
		def := ""
		if f.Default != "" {
			def = "(default " + f.Default + ")"
		}
		// Every flag carries the same escape codes, so columns stay aligned.
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", c.Wrap(FlagStyle, f.Flag), def, f.Usage)
	}
	return tw.Flush()
}
