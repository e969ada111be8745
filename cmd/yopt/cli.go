// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/yopt/pkg/cli"
)

const configEnv = "YOPT_CONFIG"

type globalFlagsParsed struct {
	Config  string `flag:"config" help:"Option defaults file (YOPT_CONFIG, or yopt.toml in a parent directory)"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log where option defaults come from"`
	NoColor bool   `flag:"no-color" help:"Disable colored output"`
}

// parseGlobalFlags parses the global flags that precede the command name.
// Everything from the command on is left for the command, so a command
// option such as edit's --config is never taken as a global flag. Help
// flags are passed through for yargs; any other unknown leading flag is
// an error.
func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	n := globalPrefixLen(args)
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args[:n], yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	remaining := make([]string, 0, len(args))
	for _, arg := range result.RemainingArgs {
		if !isHelpFlag(arg) {
			return globalFlagsParsed{}, nil, fmt.Errorf("unknown global flag: %s", arg)
		}
		remaining = append(remaining, arg)
	}
	remaining = append(remaining, args[n:]...)
	return result.Flags, remaining, nil
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "--help", "-h", "--help-llm":
		return true
	}
	return false
}

// globalPrefixLen returns the number of leading args before the command
// name. --config consumes a value unless written as --config=path.
func globalPrefixLen(args []string) int {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			return i
		}
		if name := strings.TrimLeft(arg, "-"); name == "config" {
			i++
		}
	}
	return len(args)
}

func buildHelpConfig() yargs.HelpConfig {
	config := cli.HelpConfig()
	config.SubCommands["usage"] = yargs.SubCommandInfo{
		Name:        "usage",
		Description: "Print the usage text of a command's options",
		Usage:       "COMMAND",
		Examples:    []string{"yopt usage run"},
	}
	config.SubCommands["flags"] = yargs.SubCommandInfo{
		Name:        "flags",
		Description: "List a command's options with their defaults",
		Usage:       "COMMAND",
		Examples:    []string{"yopt flags logs"},
	}
	config.SubCommands["defaults"] = yargs.SubCommandInfo{
		Name:        "defaults",
		Description: "Show the option defaults loaded from the defaults file",
		Usage:       "[COMMAND]",
	}
	return config
}

// stripCommand drops the command name yargs leaves at the front of args.
func stripCommand(name string, args []string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}
