// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	FlagStyle  = []color.Attribute{color.FgCyan, color.Bold}
	ErrorStyle = []color.Attribute{color.FgRed}
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer enables colour only when out is a terminal, NO_COLOR is
// unset and TERM names a capable terminal.
func NewColorizer(out io.Writer) Colorizer {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	t := os.Getenv("TERM")
	if t == "" || t == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap styles text. The global color.NoColor setting is ignored; c alone
// decides.
func (c Colorizer) Wrap(style []color.Attribute, text string) string {
	if !c.Enabled || len(style) == 0 || text == "" {
		return text
	}
	col := color.New(style...)
	col.EnableColor()
	return col.Sprint(text)
}
