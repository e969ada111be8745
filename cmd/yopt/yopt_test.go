// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate runs the test from an empty directory with no defaults file.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(configEnv, "")
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

type decodedOutput struct {
	Command string          `json:"command"`
	Options json.RawMessage `json:"options"`
	Payload []string        `json:"payload"`
}

func decodeOutput(t *testing.T, out string) decodedOutput {
	t.Helper()
	var got decodedOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	return got
}

func TestRunPrintsRecord(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "logs", "--lines", "5", "--follow", "true")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	got := decodeOutput(t, stdout)
	if got.Command != "logs" {
		t.Errorf("command = %q, want logs", got.Command)
	}
	var opts struct {
		Follow bool `json:"follow"`
		Lines  int  `json:"lines"`
	}
	if err := json.Unmarshal(got.Options, &opts); err != nil {
		t.Fatalf("options: %v", err)
	}
	if !opts.Follow || opts.Lines != 5 {
		t.Errorf("options = %+v, want follow and 5 lines", opts)
	}
}

func TestRunPayloadArgs(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"flags", []string{"run", "--net", "ts", "--", "--port", "8080"}, []string{"--port", "8080"}},
		{"long help", []string{"run", "--net", "ts", "--", "--help"}, []string{"--help"}},
		{"short help", []string{"stage", "--", "-h", "x"}, []string{"-h", "x"}},
		{"no payload", []string{"run", "--net", "ts", "--"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr = %q", code, stderr)
			}
			got := decodeOutput(t, stdout)
			if got.Command != tt.args[0] {
				t.Errorf("command = %q, want %q", got.Command, tt.args[0])
			}
			if !reflect.DeepEqual(got.Payload, tt.want) {
				t.Errorf("payload = %q, want %q", got.Payload, tt.want)
			}
		})
	}
}

func TestRunExitCodes(t *testing.T) {
	isolate(t)
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "invalid value",
			args:       []string{"logs", "--lines", "many"},
			wantCode:   2,
			wantStderr: "Invalid value for --lines: many\n",
		},
		{
			name:       "all invalid arguments reported",
			args:       []string{"logs", "--follow", "maybe", "--lines"},
			wantCode:   2,
			wantStderr: "Invalid value for --follow: maybe\nMissing argument for --lines\n",
		},
		{
			name:       "validation failure",
			args:       []string{"edit", "--config", "true", "--ts", "true"},
			wantCode:   1,
			wantStderr: "Error: cannot use --config and --ts together\n",
		},
		{
			name:       "unknown global flag",
			args:       []string{"--bogus", "logs", "--lines", "3"},
			wantCode:   2,
			wantStderr: "unknown global flag: --bogus\n",
		},
		{
			name:     "unknown command",
			args:     []string{"deploy"},
			wantCode: 1,
		},
		{
			name:     "usage without a command",
			args:     []string{"usage"},
			wantCode: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if tt.wantStderr != "" && stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRunUsage(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "usage", "logs")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	want := "--follow\n\tFollow log output\n--lines\n\tNumber of lines to show (-1 for all)\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunFlags(t *testing.T) {
	isolate(t)
	code, stdout, stderr := runCLI(t, "flags", "mount")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{"--type", "(default nfs)", "--opts", "--deps"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("flags output missing %q:\n%s", want, stdout)
		}
	}
}

func writeDefaults(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunDefaultsFile(t *testing.T) {
	isolate(t)
	path := writeDefaults(t, "defaults.toml", "[logs]\nlines = 100\nfollow = true\n")

	code, stdout, stderr := runCLI(t, "--config", path, "logs", "--lines", "7")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	var opts struct {
		Follow bool `json:"follow"`
		Lines  int  `json:"lines"`
	}
	if err := json.Unmarshal(decodeOutput(t, stdout).Options, &opts); err != nil {
		t.Fatal(err)
	}
	if !opts.Follow || opts.Lines != 7 {
		t.Errorf("options = %+v, want follow from file and lines from args", opts)
	}
}

func TestRunDefaultsFromEnv(t *testing.T) {
	isolate(t)
	path := writeDefaults(t, "defaults.yaml", "status:\n  format: json\n")
	t.Setenv(configEnv, path)

	code, stdout, stderr := runCLI(t, "defaults", "status")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if want := "status: --format json\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunDefaultsFoundInParent(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "yopt.toml"), []byte("[mount]\ntype = \"cifs\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	code, stdout, stderr := runCLI(t, "--verbose", "mount")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, stderr)
	}
	if !strings.Contains(stdout, `"type": "cifs"`) {
		t.Errorf("stdout = %s, want type from yopt.toml", stdout)
	}
	if !strings.Contains(stderr, "yopt: loaded defaults from") {
		t.Errorf("stderr = %q, want verbose log line", stderr)
	}
}

func TestRunBadDefaultsFile(t *testing.T) {
	isolate(t)
	path := writeDefaults(t, "defaults.ini", "lines=1")
	code, _, stderr := runCLI(t, "--config", path, "logs")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "unsupported defaults file format") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		args        []string
		wantFlags   globalFlagsParsed
		wantRemains []string
	}{
		{
			args:        []string{"--config", "x.toml", "-v", "logs", "--lines", "3"},
			wantFlags:   globalFlagsParsed{Config: "x.toml", Verbose: true},
			wantRemains: []string{"logs", "--lines", "3"},
		},
		{
			args:        []string{"edit", "--config", "true"},
			wantRemains: []string{"edit", "--config", "true"},
		},
		{
			args:        []string{"-h"},
			wantRemains: []string{"-h"},
		},
		{
			args:        []string{"--no-color", "--config=y.yaml", "status"},
			wantFlags:   globalFlagsParsed{Config: "y.yaml", NoColor: true},
			wantRemains: []string{"status"},
		},
	}
	for _, tt := range tests {
		flags, remaining, err := parseGlobalFlags(tt.args)
		if err != nil {
			t.Fatalf("parseGlobalFlags(%q) error = %v", tt.args, err)
		}
		if flags != tt.wantFlags {
			t.Errorf("parseGlobalFlags(%q) flags = %+v, want %+v", tt.args, flags, tt.wantFlags)
		}
		if !reflect.DeepEqual(remaining, tt.wantRemains) {
			t.Errorf("parseGlobalFlags(%q) remaining = %q, want %q", tt.args, remaining, tt.wantRemains)
		}
	}
}

func TestStripCommand(t *testing.T) {
	if got := stripCommand("logs", []string{"logs", "--lines", "1"}); !reflect.DeepEqual(got, []string{"--lines", "1"}) {
		t.Errorf("stripCommand = %q", got)
	}
	if got := stripCommand("logs", []string{"--lines", "1"}); !reflect.DeepEqual(got, []string{"--lines", "1"}) {
		t.Errorf("stripCommand = %q", got)
	}
}

func TestParseGlobalFlagsRejectsUnknown(t *testing.T) {
	for _, args := range [][]string{
		{"--bogus", "logs"},
		{"-v", "--lines", "3", "logs"},
	} {
		if _, _, err := parseGlobalFlags(args); err == nil {
			t.Errorf("parseGlobalFlags(%q) succeeded, want error", args)
		}
	}
}
