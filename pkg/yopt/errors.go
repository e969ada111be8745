// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInvalidArgument covers usage requests, flags missing their value
	// and values that fail conversion. Errors of this kind are merged when
	// combined.
	KindInvalidArgument Kind = iota + 1
	// KindOther is any other failure, such as a consumer's validation of
	// an otherwise well-formed record. It is never merged.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindOther:
		return "other"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ErrUsage is matched by errors produced in Usage mode.
var ErrUsage = errors.New("usage requested")

// Error is the failure value of every evaluation.
type Error struct {
	Kind        Kind
	Description string
	Flag        string // "--key" for single-flag errors
	Value       string // the rejected token, if any
	Err         error  // underlying cause, if any

	causes []*Error
}

func (e *Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying cause of a single error, or the original
// errors of a merged one.
func (e *Error) Unwrap() []error {
	if len(e.causes) > 0 {
		errs := make([]error, len(e.causes))
		for i, c := range e.causes {
			errs[i] = c
		}
		return errs
	}
	if e.Err != nil {
		return []error{e.Err}
	}
	return nil
}

// Causes returns the individual errors a merged error was built from, in
// the order they were found. A single error returns itself.
func (e *Error) Causes() []*Error {
	if len(e.causes) > 0 {
		return e.causes
	}
	return []*Error{e}
}

// InvalidArgument returns an error of kind KindInvalidArgument.
func InvalidArgument(desc string) *Error {
	return &Error{Kind: KindInvalidArgument, Description: desc}
}

// Errorf returns an error of the given kind with a formatted description.
// A %w verb sets the error's cause.
func Errorf(kind Kind, format string, args ...any) *Error {
	wrapped := fmt.Errorf(format, args...)
	return &Error{Kind: kind, Description: wrapped.Error(), Err: errors.Unwrap(wrapped)}
}

// IsInvalidArgument reports whether err is, or wraps, an Error of kind
// KindInvalidArgument.
func IsInvalidArgument(err error) bool {
	_, ok := asInvalidArgument(err)
	return ok
}

func asInvalidArgument(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidArgument {
		return nil, false
	}
	return e, true
}

func usageError(flag, usage string) *Error {
	return &Error{
		Kind:        KindInvalidArgument,
		Description: flag + "\n\t" + usage,
		Flag:        flag,
		Err:         ErrUsage,
	}
}

func missingArgument(flag string) *Error {
	return &Error{
		Kind:        KindInvalidArgument,
		Description: "Missing argument for " + flag,
		Flag:        flag,
	}
}

func invalidValue(flag, token string) *Error {
	return &Error{
		Kind:        KindInvalidArgument,
		Description: "Invalid value for " + flag + ": " + token,
		Flag:        flag,
		Value:       token,
	}
}

// Combine merges the errors of two independent evaluations.
//
// A nil side yields the other side. When both are invalid-argument errors
// the result is one invalid-argument error whose description is the left
// description and the right description joined by a newline. Otherwise a
// non-invalid-argument error is returned verbatim, the left one if both
// sides are.
func Combine(left, right error) error {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	l, lok := asInvalidArgument(left)
	r, rok := asInvalidArgument(right)
	switch {
	case lok && rok:
		return merge(left, right, l, r)
	case !lok:
		return left
	default:
		return right
	}
}

// merge joins the messages of left and right, wrappers included.
func merge(left, right error, l, r *Error) *Error {
	causes := make([]*Error, 0, len(l.Causes())+len(r.Causes()))
	causes = append(causes, l.Causes()...)
	causes = append(causes, r.Causes()...)
	return &Error{
		Kind:        KindInvalidArgument,
		Description: left.Error() + "\n" + right.Error(),
		causes:      causes,
	}
}

// Join combines errs left to right with Combine.
func Join(errs ...error) error {
	var out error
	for _, err := range errs {
		out = Combine(out, err)
	}
	return out
}
