// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yopt

import "slices"

// Evaluate evaluates a single option.
//
// In Usage mode it always fails with the option's usage block. Otherwise
// it looks for the first token equal to "--key", first in the live
// arguments and then in the fallback tokens: absent, the default is
// returned; present as the last token, the value is missing; followed by
// another token, that token is converted.
func Evaluate[T any](opt Option[T], mode Mode) Result[T] {
	flag := opt.Flag()
	if mode.IsUsage() {
		return Failure[T](usageError(flag, opt.Usage))
	}
	tokens := mode.Tokens()
	i := slices.Index(tokens, flag)
	if i < 0 {
		tokens = mode.Fallback()
		if i = slices.Index(tokens, flag); i < 0 {
			return Success(opt.Default)
		}
	}
	if i == len(tokens)-1 {
		return Failure[T](missingArgument(flag))
	}
	token := tokens[i+1]
	v, ok := opt.convert(token)
	if !ok {
		return Failure[T](invalidValue(flag, token))
	}
	return Success(v)
}

// From is Evaluate with the mode first, reading as "mode supplies opt".
func From[T any](mode Mode, opt Option[T]) Result[T] {
	return Evaluate(opt, mode)
}
