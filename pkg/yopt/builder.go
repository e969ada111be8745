// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

// Builder evaluates the options of one record in declaration order and
// accumulates their errors. It is the loop form of chaining Map and Apply
// over a curried constructor and produces the same result.
//
// A Builder is used for a single evaluation and is not safe for
// concurrent use.
type Builder struct {
	mode Mode
	err  error
}

func NewBuilder(mode Mode) *Builder {
	return &Builder{mode: mode}
}

func (b *Builder) Mode() Mode {
	return b.mode
}

// Err returns the combined error of all fields evaluated so far.
func (b *Builder) Err() error {
	return b.err
}

// Field evaluates opt and returns its value. On failure the error is
// folded into b and the zero value is returned; the zero value must not
// be used once b has an error, which Build guarantees.
func Field[T any](b *Builder, opt Option[T]) T {
	v, err := Evaluate(opt, b.mode).Get()
	if err != nil {
		b.err = Combine(b.err, err)
	}
	return v
}

// Check runs a validation of already evaluated fields. It is skipped in
// Usage mode and when a field has already failed, since the field values
// are meaningless then.
func (b *Builder) Check(validate func() error) {
	if b.mode.IsUsage() || b.err != nil {
		return
	}
	if err := validate(); err != nil {
		b.err = Combine(b.err, err)
	}
}

// Build returns the record produced by construct, or the accumulated
// error. construct is not called if any field failed.
func Build[R any](b *Builder, construct func() R) Result[R] {
	if b.err != nil {
		return Failure[R](b.err)
	}
	return Success(construct())
}
