// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

// Map applies f to the value of a successful r. A failure is passed
// through unchanged.
func Map[A, B any](f func(A) B, r Result[A]) Result[B] {
	if r.err != nil {
		return Failure[B](r.err)
	}
	return Success(f(r.value))
}

// Apply applies the function carried by fr to the value of r.
//
// If both fail their errors are combined with Combine. If only one fails
// its error is returned. If both succeed the function is applied, which
// yields either the next partially applied constructor or the finished
// value.
func Apply[A, B any](fr Result[func(A) B], r Result[A]) Result[B] {
	switch {
	case fr.err != nil && r.err != nil:
		return Failure[B](Combine(fr.err, r.err))
	case fr.err != nil:
		return Failure[B](fr.err)
	case r.err != nil:
		return Failure[B](r.err)
	}
	return Success(fr.value(r.value))
}
