// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/yopt/pkg/cli"
	"github.com/yeetrun/yopt/pkg/optfile"
	"github.com/yeetrun/yopt/pkg/tui"
	"github.com/yeetrun/yopt/pkg/yopt"
)

// exitError carries the process exit code of a failed command. The message
// has already been rendered when it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type app struct {
	stdout   io.Writer
	stderr   io.Writer
	color    tui.Colorizer
	defaults *optfile.File
	verbose  bool
	// payload holds the tokens after "--"; yargs never sees them.
	payload []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetPrefix("yopt: ")
	log.SetOutput(stderr)
	globalFlags, remaining, err := parseGlobalFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	a := &app{
		stdout:  stdout,
		stderr:  stderr,
		color:   tui.NewColorizer(stderr),
		verbose: globalFlags.Verbose,
	}
	if globalFlags.NoColor {
		a.color.Enabled = false
	}
	if err := a.loadDefaults(globalFlags.Config); err != nil {
		tui.RenderError(stderr, a.color, err)
		return 1
	}

	handlers := make(map[string]yargs.SubcommandHandler)
	for _, name := range cli.CommandNames() {
		handlers[name] = a.handleCommand
	}
	handlers["usage"] = a.handleUsage
	handlers["flags"] = a.handleFlags
	handlers["defaults"] = a.handleDefaults

	remaining, a.payload = cli.SplitArgsAtDoubleDash(remaining)
	err = yargs.RunSubcommands(context.Background(), remaining, buildHelpConfig(), globalFlagsParsed{}, handlers)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	printCLIError(stderr, err)
	return 1
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, err)
}

func (a *app) logf(format string, args ...any) {
	if a.verbose {
		log.Printf(format, args...)
	}
}

func (a *app) loadDefaults(explicit string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err := optfile.Resolve(explicit, configEnv, cwd)
	if err != nil {
		return err
	}
	if path == "" {
		a.logf("no defaults file found")
		return nil
	}
	f, err := optfile.Load(path)
	if err != nil {
		return err
	}
	a.logf("loaded defaults from %s (sections: %s)", f.Path, strings.Join(f.Sections(), ", "))
	a.defaults = f
	return nil
}

// fail renders err and wraps it with the exit code for its kind.
func (a *app) fail(err error) error {
	tui.RenderError(a.stderr, a.color, err)
	code := 1
	if yopt.IsInvalidArgument(err) {
		code = 2
	}
	return &exitError{code: code, err: err}
}

type commandOutput struct {
	Command string   `json:"command"`
	Options any      `json:"options"`
	Payload []string `json:"payload,omitempty"`
}

func (a *app) handleCommand(_ context.Context, args []string) error {
	name := firstCommand(args)
	fallback := a.defaults.Tokens(name)
	if len(fallback) > 0 {
		a.logf("%s: fallback %q", name, fallback)
	}
	cmdArgs := stripCommand(name, args)
	if len(a.payload) > 0 {
		cmdArgs = slices.Concat(cmdArgs, []string{"--"}, a.payload)
	}
	rec, payload, err := cli.Parse(name, cmdArgs, fallback)
	if err != nil {
		return a.fail(err)
	}
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(commandOutput{Command: name, Options: rec, Payload: payload})
}

func (a *app) handleUsage(_ context.Context, args []string) error {
	name, err := commandArg("usage", args)
	if err != nil {
		return a.fail(err)
	}
	text, err := cli.Usage(name)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.stdout, text)
	return nil
}

func (a *app) handleFlags(_ context.Context, args []string) error {
	name, err := commandArg("flags", args)
	if err != nil {
		return a.fail(err)
	}
	cmd, ok := cli.LookupCommand(name)
	if !ok {
		return a.fail(fmt.Errorf("unknown command: %s", name))
	}
	return tui.RenderFlags(a.stdout, a.color, yopt.Describe(cmd.Flags...))
}

func (a *app) handleDefaults(_ context.Context, args []string) error {
	rest := stripCommand("defaults", args)
	if a.defaults == nil {
		fmt.Fprintln(a.stdout, "no defaults file")
		return nil
	}
	sections := a.defaults.Sections()
	if len(rest) > 0 {
		sections = rest[:1]
	}
	for _, section := range sections {
		fmt.Fprintf(a.stdout, "%s: %s\n", section, strings.Join(a.defaults.Tokens(section), " "))
	}
	return nil
}

// commandArg returns the single command name that follows sub in args.
func commandArg(sub string, args []string) (string, error) {
	rest := stripCommand(sub, args)
	if len(rest) != 1 {
		return "", fmt.Errorf("%s requires exactly one command name", sub)
	}
	return rest[0], nil
}

func firstCommand(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}
