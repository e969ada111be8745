// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yopt evaluates declarative option records.
//
// A program declares the flags a subcommand accepts as typed Option values
// and writes one Evaluate method on its options struct. The same
// declaration is evaluated either against a live argument list or in usage
// mode, where every option reports its own help text instead of a value.
//
// # Declaring options
//
//	var (
//	    linesOpt  = yopt.IntOption("lines", -1, "Number of lines to show")
//	    formatOpt = yopt.StringOption("format", "table", "Output format")
//	    hostOpt   = yopt.Nullable("host", "Override target host", yopt.String)
//	)
//
//	type LogsOptions struct {
//	    Lines  int
//	    Format string
//	    Host   *string
//	}
//
//	func (LogsOptions) Evaluate(mode yopt.Mode) yopt.Result[LogsOptions] {
//	    b := yopt.NewBuilder(mode)
//	    lines := yopt.Field(b, linesOpt)
//	    format := yopt.Field(b, formatOpt)
//	    host := yopt.Field(b, hostOpt)
//	    return yopt.Build(b, func() LogsOptions {
//	        return LogsOptions{Lines: lines, Format: format, Host: host}
//	    })
//	}
//
// # Flag syntax
//
// Every flag is written as two tokens, "--key value". Only the first
// occurrence of a key is honored; later duplicates are ignored. A flag
// that is absent evaluates to its default.
//
// # Errors
//
// All failures are *Error values. Problems with the command line are of
// kind KindInvalidArgument, and several of them found in one evaluation are
// merged into a single error with one line per problem. Usage mode always
// fails with the merged usage text of every option; such errors match
// ErrUsage with errors.Is.
package yopt
