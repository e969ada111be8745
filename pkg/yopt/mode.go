// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import (
	"fmt"
	"slices"
)

// Mode selects how a record is evaluated: against a list of argument
// tokens, or for its usage text only. The zero Mode evaluates against an
// empty argument list.
type Mode struct {
	usage    bool
	tokens   []string
	fallback []string
}

// Arguments returns a Mode that parses options from tokens. The tokens
// are copied.
func Arguments(tokens []string) Mode {
	return Mode{tokens: slices.Clone(tokens)}
}

// Usage returns a Mode in which every option reports its usage text
// instead of a value.
func Usage() Mode {
	return Mode{usage: true}
}

func (m Mode) IsUsage() bool {
	return m.usage
}

// Tokens returns the argument tokens of an Arguments mode, or nil for
// Usage.
func (m Mode) Tokens() []string {
	if m.usage {
		return nil
	}
	return m.tokens
}

// Fallback returns the tokens consulted for flags the live arguments do
// not mention.
func (m Mode) Fallback() []string {
	if m.usage {
		return nil
	}
	return m.fallback
}

// WithFallback returns a copy of m that consults tokens for any flag the
// live arguments do not mention at all. A flag present in the live
// arguments is never read from the fallback, even if its value is
// missing or invalid. Usage modes are returned unchanged.
func (m Mode) WithFallback(tokens []string) Mode {
	if m.usage {
		return m
	}
	m.fallback = append(slices.Clone(m.fallback), tokens...)
	return m
}

func (m Mode) String() string {
	if m.usage {
		return "usage"
	}
	if len(m.fallback) > 0 {
		return fmt.Sprintf("arguments%q fallback%q", m.tokens, m.fallback)
	}
	return fmt.Sprintf("arguments%q", m.tokens)
}
