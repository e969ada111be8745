// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

// Result holds either a value or the error that prevented producing one.
type Result[T any] struct {
	value T
	err   error
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed Result. A nil err is replaced with an error of
// kind KindOther so that a Failure never reads as a success.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = Errorf(KindOther, "failure without an error")
	}
	return Result[T]{err: err}
}

// Get returns the value and error of r.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) Err() error {
	return r.err
}

// Value returns the value of a successful Result and the zero value
// otherwise.
func (r Result[T]) Value() T {
	return r.value
}
