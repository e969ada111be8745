// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import (
	"strconv"
	"time"
)

// Converter turns a single argument token into a value of type T. It
// reports false when the token is not a valid literal of T. Converters
// must be pure; the evaluator may call them any number of times.
type Converter[T any] func(token string) (T, bool)

// Int converts a base-10 integer literal. A leading sign is permitted and
// no whitespace is trimmed.
func Int(token string) (int, bool) {
	i, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return i, true
}

// String is the identity conversion.
func String(token string) (string, bool) {
	return token, true
}

func Int64(token string) (int64, bool) {
	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

func Uint(token string) (uint, bool) {
	u, err := strconv.ParseUint(token, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(u), true
}

func Float64(token string) (float64, bool) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool accepts the literals understood by strconv.ParseBool. Boolean
// options still consume a value token: "--pull true".
func Bool(token string) (bool, bool) {
	b, err := strconv.ParseBool(token)
	if err != nil {
		return false, false
	}
	return b, true
}

func Duration(token string) (time.Duration, bool) {
	d, err := time.ParseDuration(token)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Pointer lifts conv so that a successful conversion yields a pointer to
// the converted value.
func Pointer[T any](conv Converter[T]) Converter[*T] {
	return func(token string) (*T, bool) {
		v, ok := conv(token)
		if !ok {
			return nil, false
		}
		return &v, true
	}
}
