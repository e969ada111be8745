// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"sort"

	"github.com/shayne/yargs"
	"github.com/yeetrun/yopt/pkg/yopt"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

// Command couples a command's help metadata with its options record.
type Command struct {
	Info CommandInfo
	// Flags lists the record's options in declaration order.
	Flags []yopt.Describer

	evaluate func(yopt.Mode) (any, error)
}

// Evaluate evaluates the command's options record in mode.
func (c Command) Evaluate(mode yopt.Mode) (any, error) {
	return c.evaluate(mode)
}

func command[R any](info CommandInfo, rec yopt.Record[R], flags ...yopt.Describer) Command {
	return Command{
		Info:  info,
		Flags: flags,
		evaluate: func(mode yopt.Mode) (any, error) {
			return rec.Evaluate(mode).Get()
		},
	}
}

var commands = map[string]Command{
	"run": command[RunOptions](CommandInfo{
		Name:        "run",
		Description: "Install/update from a payload (binary, compose, image, Dockerfile)",
		Usage:       "[--net svc,ts] [--ts-tags tag:a,tag:b] [-- <payload args>]",
		Examples: []string{
			"yopt run --net svc,ts --ts-tags tag:app",
			"yopt run --pull true --min-version 0.9",
			"yopt run --restart false -- --app-flag value",
		},
	}, RunOptions{}, runFlags()...),
	"stage": command[StageOptions](CommandInfo{
		Name:        "stage",
		Description: "Upload a payload without applying it",
		Usage:       "[run flags] [-- <payload args>]",
	}, StageOptions{}, runFlags()...),
	"edit": command[EditOptions](CommandInfo{
		Name:        "edit",
		Description: "Edit a service",
	}, EditOptions{}, editConfigOpt, editTSOpt, editRestartOpt),
	"logs": command[LogsOptions](CommandInfo{
		Name:        "logs",
		Description: "Show logs of a service",
		Examples:    []string{"yopt logs --lines 100", "yopt logs --follow true"},
	}, LogsOptions{}, logsFollowOpt, logsLinesOpt),
	"status": command[StatusOptions](CommandInfo{
		Name:        "status",
		Description: "Show status of a service",
		Usage:       "[--format table|json|plain]",
	}, StatusOptions{}, statusFormatOpt),
	"info": command[InfoOptions](CommandInfo{
		Name:        "info",
		Description: "Show detailed info about a service",
		Usage:       "[--format plain|json|json-pretty]",
	}, InfoOptions{}, infoFormatOpt),
	"cron": command[CronOptions](CommandInfo{
		Name:        "cron",
		Description: "Run a service on a schedule",
		Usage:       "--schedule \"m h dom mon dow\" [--persistent true]",
		Examples:    []string{`yopt cron --schedule "0 9 * * 1-5"`},
	}, CronOptions{}, cronScheduleOpt, cronPersistentOpt),
	"mount": command[MountOptions](CommandInfo{
		Name:        "mount",
		Description: "Mount a network filesystem on the host",
		Usage:       "[--type nfs] [--opts defaults] [--deps a,b]",
		Examples:    []string{"yopt mount --type nfs --opts defaults"},
	}, MountOptions{}, mountTypeOpt, mountOptsOpt, mountDepsOpt),
	"version": command[VersionOptions](CommandInfo{
		Name:        "version",
		Description: "Show the version of the Catch server",
	}, VersionOptions{}, versionJSONOpt, versionRPCPortOpt),
}

// CommandNames returns the command names in sorted order.
func CommandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func LookupCommand(name string) (Command, bool) {
	c, ok := commands[name]
	return c, ok
}

// CommandRegistry describes the commands for the yargs dispatcher.
func CommandRegistry() yargs.Registry {
	subcommands := make(map[string]yargs.CommandSpec, len(commands))
	for name, cmd := range commands {
		subcommands[name] = yargs.CommandSpec{Info: toSubCommandInfo(name, cmd.Info)}
	}
	return yargs.Registry{
		Command: yargs.CommandInfo{
			Name:        "yopt",
			Description: "Evaluate declarative option records for service commands.",
			Examples: []string{
				"yopt run --net ts --ts-tags tag:app",
				"yopt usage logs",
				"yopt --config ./yopt.toml status",
			},
		},
		SubCommands: subcommands,
	}
}

// HelpConfig returns the help metadata of the commands.
func HelpConfig() yargs.HelpConfig {
	reg := CommandRegistry()
	subcommands := make(map[string]yargs.SubCommandInfo, len(reg.SubCommands))
	for name, spec := range reg.SubCommands {
		subcommands[name] = spec.Info
	}
	return yargs.HelpConfig{
		Command:     reg.Command,
		SubCommands: subcommands,
		Groups:      map[string]yargs.GroupInfo{},
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// Parse evaluates the options of the named command from args. Tokens after
// "--" are not parsed and are returned as payload arguments. fallback
// supplies values for flags args does not mention.
func Parse(name string, args, fallback []string) (any, []string, error) {
	cmd, ok := commands[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown command: %s", name)
	}
	parseArgs, payload := SplitArgsAtDoubleDash(args)
	rec, err := cmd.Evaluate(yopt.Arguments(parseArgs).WithFallback(fallback))
	if err != nil {
		return nil, nil, err
	}
	return rec, payload, nil
}

// Usage returns the merged usage text of the named command.
func Usage(name string) (string, error) {
	cmd, ok := commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command: %s", name)
	}
	_, err := cmd.Evaluate(yopt.Usage())
	return yopt.UsageOf(err)
}

// SplitArgsAtDoubleDash splits args at the first "--" into the tokens to
// parse and the payload arguments after it.
func SplitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}
