// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

const flagPrefix = "--"

// Option declares a single flag: its key, the value used when the flag is
// absent, and the help text shown in usage mode. Options are meant to be
// declared once, usually as package-level variables, and never mutated.
type Option[T any] struct {
	Key     string
	Default T
	Usage   string

	conv Converter[T]
}

// New returns an Option that converts its value token with conv.
func New[T any](key string, def T, usage string, conv Converter[T]) Option[T] {
	return Option[T]{Key: key, Default: def, Usage: usage, conv: conv}
}

// Nullable returns an Option whose default is nil. A present flag yields
// a pointer to the converted value; conversion failures are still
// reported.
func Nullable[T any](key, usage string, conv Converter[T]) Option[*T] {
	return Option[*T]{Key: key, Usage: usage, conv: Pointer(conv)}
}

func IntOption(key string, def int, usage string) Option[int] {
	return New(key, def, usage, Int)
}

func StringOption(key, def, usage string) Option[string] {
	return New(key, def, usage, String)
}

func BoolOption(key string, def bool, usage string) Option[bool] {
	return New(key, def, usage, Bool)
}

func Float64Option(key string, def float64, usage string) Option[float64] {
	return New(key, def, usage, Float64)
}

func DurationOption(key string, def time.Duration, usage string) Option[time.Duration] {
	return New(key, def, usage, Duration)
}

// Flag returns the command-line spelling of the option, "--key".
func (o Option[T]) Flag() string {
	return flagPrefix + o.Key
}

// String implements fmt.Stringer and is the same as Flag.
func (o Option[T]) String() string {
	return o.Flag()
}

// UsageText returns the usage block shown for this option.
func (o Option[T]) UsageText() string {
	return o.Flag() + "\n\t" + o.Usage
}

// DefaultText renders the default value for help tables. Nil defaults
// render as the empty string and slices as comma-separated lists.
func (o Option[T]) DefaultText() string {
	return renderDefault(any(o.Default))
}

func renderDefault(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return fmt.Sprint(rv.Elem().Interface())
	case reflect.Slice:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

func (o Option[T]) convert(token string) (T, bool) {
	if o.conv == nil {
		var zero T
		return zero, false
	}
	return o.conv(token)
}

// Help returns the option's usage text.
func (o Option[T]) Help() string {
	return o.Usage
}
