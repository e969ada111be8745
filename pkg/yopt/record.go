// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import "errors"

// Record is implemented by options structs. Evaluate is usually declared
// on the zero value and builds a fresh record each call.
type Record[R any] interface {
	Evaluate(Mode) Result[R]
}

// Parse evaluates rec against args.
func Parse[R any](rec Record[R], args []string) (R, error) {
	return rec.Evaluate(Arguments(args)).Get()
}

// UsageText returns the merged usage text of rec. A record that declares
// no options has no usage text.
func UsageText[R any](rec Record[R]) (string, error) {
	_, err := rec.Evaluate(Usage()).Get()
	return UsageOf(err)
}

// UsageOf extracts the usage text from the error of a Usage evaluation.
// A nil err has no usage text. Any error that is not a usage error is
// returned as is.
func UsageOf(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if !errors.Is(err, ErrUsage) {
		return "", err
	}
	if _, ok := asInvalidArgument(err); !ok {
		return "", err
	}
	return err.Error(), nil
}

// Describer is the type-independent view of an Option used for help
// listings.
type Describer interface {
	Flag() string
	Help() string
	DefaultText() string
}

// FlagInfo is one row of a help listing.
type FlagInfo struct {
	Flag    string
	Default string
	Usage   string
}

// Describe lists opts in the given order.
func Describe(opts ...Describer) []FlagInfo {
	out := make([]FlagInfo, 0, len(opts))
	for _, o := range opts {
		out = append(out, FlagInfo{Flag: o.Flag(), Default: o.DefaultText(), Usage: o.Help()})
	}
	return out
}
