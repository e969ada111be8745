// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/yeetrun/yopt/pkg/argval"
	"github.com/yeetrun/yopt/pkg/yopt"
)

var (
	runNetOpt           = yopt.StringOption("net", "", "Networks to attach (svc, ts, macvlan), comma separated")
	runTsVerOpt         = yopt.StringOption("ts-ver", "", "Tailscale version to install in the service netns")
	runTsExitOpt        = yopt.StringOption("ts-exit", "", "Tailscale exit node")
	runTsTagsOpt        = yopt.New("ts-tags", []string(nil), "Tailscale tags, comma separated", argval.CSV(yopt.String))
	runTsAuthKeyOpt     = yopt.StringOption("ts-auth-key", "", "Tailscale auth key")
	runMacvlanMacOpt    = yopt.StringOption("macvlan-mac", "", "MAC address of the macvlan interface")
	runMacvlanVlanOpt   = yopt.IntOption("macvlan-vlan", 0, "VLAN of the macvlan interface")
	runMacvlanParentOpt = yopt.StringOption("macvlan-parent", "", "Parent interface of the macvlan interface")
	runRestartOpt       = yopt.BoolOption("restart", true, "Restart the service after installing")
	runPullOpt          = yopt.BoolOption("pull", false, "Pull images before starting")
	runPublishOpt       = yopt.New("publish", []string(nil), "Published ports (host:container), comma separated", argval.CSV(yopt.String))
	runMinVersionOpt    = yopt.New("min-version", (*semver.Version)(nil), "Minimum catch version required on the host", argval.SemVer)
	runDigestOpt        = yopt.New("digest", digest.Digest(""), "Expected digest of the payload", argval.Digest)
	runRequestIDOpt     = yopt.Nullable("request-id", "Idempotency key for the install", argval.UUID)
)

func runFlags() []yopt.Describer {
	return []yopt.Describer{
		runNetOpt, runTsVerOpt, runTsExitOpt, runTsTagsOpt, runTsAuthKeyOpt,
		runMacvlanMacOpt, runMacvlanVlanOpt, runMacvlanParentOpt,
		runRestartOpt, runPullOpt, runPublishOpt,
		runMinVersionOpt, runDigestOpt, runRequestIDOpt,
	}
}

type RunOptions struct {
	Net           string          `json:"net"`
	TsVer         string          `json:"tsVer,omitempty"`
	TsExit        string          `json:"tsExit,omitempty"`
	TsTags        []string        `json:"tsTags,omitempty"`
	TsAuthKey     string          `json:"tsAuthKey,omitempty"`
	MacvlanMac    string          `json:"macvlanMac,omitempty"`
	MacvlanVlan   int             `json:"macvlanVlan,omitempty"`
	MacvlanParent string          `json:"macvlanParent,omitempty"`
	Restart       bool            `json:"restart"`
	Pull          bool            `json:"pull"`
	Publish       []string        `json:"publish,omitempty"`
	MinVersion    *semver.Version `json:"minVersion,omitempty"`
	Digest        digest.Digest   `json:"digest,omitempty"`
	RequestID     *uuid.UUID      `json:"requestId,omitempty"`
}

func (RunOptions) Evaluate(mode yopt.Mode) yopt.Result[RunOptions] {
	b := yopt.NewBuilder(mode)
	o := RunOptions{
		Net:           yopt.Field(b, runNetOpt),
		TsVer:         yopt.Field(b, runTsVerOpt),
		TsExit:        yopt.Field(b, runTsExitOpt),
		TsTags:        yopt.Field(b, runTsTagsOpt),
		TsAuthKey:     yopt.Field(b, runTsAuthKeyOpt),
		MacvlanMac:    yopt.Field(b, runMacvlanMacOpt),
		MacvlanVlan:   yopt.Field(b, runMacvlanVlanOpt),
		MacvlanParent: yopt.Field(b, runMacvlanParentOpt),
		Restart:       yopt.Field(b, runRestartOpt),
		Pull:          yopt.Field(b, runPullOpt),
		Publish:       yopt.Field(b, runPublishOpt),
		MinVersion:    yopt.Field(b, runMinVersionOpt),
		Digest:        yopt.Field(b, runDigestOpt),
		RequestID:     yopt.Field(b, runRequestIDOpt),
	}
	b.Check(func() error {
		if o.MacvlanVlan != 0 && o.MacvlanParent == "" {
			return yopt.Errorf(yopt.KindOther, "--macvlan-vlan requires --macvlan-parent")
		}
		return nil
	})
	return yopt.Build(b, func() RunOptions { return o })
}

// StageOptions accepts the same flags as run.
type StageOptions struct {
	RunOptions
}

func (StageOptions) Evaluate(mode yopt.Mode) yopt.Result[StageOptions] {
	return yopt.Map(func(r RunOptions) StageOptions {
		return StageOptions{RunOptions: r}
	}, RunOptions{}.Evaluate(mode))
}

var (
	editConfigOpt  = yopt.BoolOption("config", false, "Edit the service config instead of the unit")
	editTSOpt      = yopt.BoolOption("ts", false, "Edit the tailscale config")
	editRestartOpt = yopt.BoolOption("restart", true, "Restart the service after editing")
)

type EditOptions struct {
	Config  bool `json:"config"`
	TS      bool `json:"ts"`
	Restart bool `json:"restart"`
}

func (EditOptions) Evaluate(mode yopt.Mode) yopt.Result[EditOptions] {
	b := yopt.NewBuilder(mode)
	config := yopt.Field(b, editConfigOpt)
	ts := yopt.Field(b, editTSOpt)
	restart := yopt.Field(b, editRestartOpt)
	b.Check(func() error {
		if config && ts {
			return yopt.Errorf(yopt.KindOther, "cannot use --config and --ts together")
		}
		return nil
	})
	return yopt.Build(b, func() EditOptions {
		return EditOptions{Config: config, TS: ts, Restart: restart}
	})
}

var (
	logsFollowOpt = yopt.BoolOption("follow", false, "Follow log output")
	logsLinesOpt  = yopt.IntOption("lines", -1, "Number of lines to show (-1 for all)")
)

type LogsOptions struct {
	Follow bool `json:"follow"`
	Lines  int  `json:"lines"`
}

func newLogsOptions(follow bool) func(int) LogsOptions {
	return func(lines int) LogsOptions {
		return LogsOptions{Follow: follow, Lines: lines}
	}
}

// Evaluate uses the applicative form: the curried constructor is lifted
// over the first option and applied to the second.
func (LogsOptions) Evaluate(mode yopt.Mode) yopt.Result[LogsOptions] {
	return yopt.Apply(
		yopt.Map(newLogsOptions, yopt.From(mode, logsFollowOpt)),
		yopt.From(mode, logsLinesOpt),
	)
}

var statusFormatOpt = yopt.New("format", "table", "Output format (table, json, plain)", argval.OneOf("table", "json", "plain"))

type StatusOptions struct {
	Format string `json:"format"`
}

func (StatusOptions) Evaluate(mode yopt.Mode) yopt.Result[StatusOptions] {
	return yopt.Map(func(format string) StatusOptions {
		return StatusOptions{Format: format}
	}, yopt.From(mode, statusFormatOpt))
}

var infoFormatOpt = yopt.StringOption("format", "plain", "Output format (plain, json, json-pretty)")

type InfoOptions struct {
	Format string `json:"format"`
}

func (InfoOptions) Evaluate(mode yopt.Mode) yopt.Result[InfoOptions] {
	b := yopt.NewBuilder(mode)
	format := yopt.Field(b, infoFormatOpt)
	b.Check(func() error {
		switch format {
		case "plain", "json", "json-pretty":
			return nil
		}
		return yopt.Errorf(yopt.KindOther, "unsupported info format %q", format)
	})
	return yopt.Build(b, func() InfoOptions { return InfoOptions{Format: format} })
}

var (
	cronScheduleOpt   = yopt.New("schedule", "", "Cron expression (m h dom mon dow), installed as a systemd timer", argval.Schedule)
	cronPersistentOpt = yopt.BoolOption("persistent", false, "Run missed events after the host was down")
)

// CronOptions holds the timer for a scheduled service. Schedule is the
// systemd calendar event converted from the cron expression.
type CronOptions struct {
	Schedule   string `json:"schedule"`
	Persistent bool   `json:"persistent"`
}

func (CronOptions) Evaluate(mode yopt.Mode) yopt.Result[CronOptions] {
	b := yopt.NewBuilder(mode)
	schedule := yopt.Field(b, cronScheduleOpt)
	persistent := yopt.Field(b, cronPersistentOpt)
	b.Check(func() error {
		if schedule == "" {
			return yopt.Errorf(yopt.KindOther, "%s is required", cronScheduleOpt.Flag())
		}
		return nil
	})
	return yopt.Build(b, func() CronOptions {
		return CronOptions{Schedule: schedule, Persistent: persistent}
	})
}

var (
	mountTypeOpt = yopt.StringOption("type", "nfs", "Filesystem type")
	mountOptsOpt = yopt.StringOption("opts", "defaults", "Mount options")
	mountDepsOpt = yopt.New("deps", []string(nil), "Services that depend on the mount, comma separated", argval.CSV(yopt.String))
)

type MountOptions struct {
	Type string   `json:"type"`
	Opts string   `json:"opts"`
	Deps []string `json:"deps,omitempty"`
}

func (MountOptions) Evaluate(mode yopt.Mode) yopt.Result[MountOptions] {
	b := yopt.NewBuilder(mode)
	typ := yopt.Field(b, mountTypeOpt)
	opts := yopt.Field(b, mountOptsOpt)
	deps := yopt.Field(b, mountDepsOpt)
	return yopt.Build(b, func() MountOptions {
		return MountOptions{Type: typ, Opts: opts, Deps: deps}
	})
}

var (
	versionJSONOpt    = yopt.BoolOption("json", false, "Print the version as JSON")
	versionRPCPortOpt = yopt.Nullable("rpc-port", "Query the catch RPC server on this port", argval.PortRange(1, 65535))
)

type VersionOptions struct {
	JSON    bool         `json:"json"`
	RPCPort *argval.Port `json:"rpcPort,omitempty"`
}

func (VersionOptions) Evaluate(mode yopt.Mode) yopt.Result[VersionOptions] {
	b := yopt.NewBuilder(mode)
	asJSON := yopt.Field(b, versionJSONOpt)
	port := yopt.Field(b, versionRPCPortOpt)
	return yopt.Build(b, func() VersionOptions {
		return VersionOptions{JSON: asJSON, RPCPort: port}
	})
}
