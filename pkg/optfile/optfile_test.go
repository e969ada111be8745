// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	wantRun := []string{"--net", "ts", "--restart", "false", "--ts-tags", "tag:a,tag:b"}
	wantLogs := []string{"--lines", "100"}

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "yopt.toml",
			content: `
[run]
net = "ts"
restart = false
ts-tags = ["tag:a", "tag:b"]

[logs]
lines = 100
`,
		},
		{
			name: "yaml",
			file: "yopt.yaml",
			content: `
run:
  net: ts
  restart: false
  ts-tags: ["tag:a", "tag:b"]
logs:
  lines: 100
`,
		},
		{
			name:    "json",
			file:    "yopt.json",
			content: `{"run": {"net": "ts", "restart": false, "ts-tags": ["tag:a", "tag:b"]}, "logs": {"lines": 100}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)
			f, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if diff := cmp.Diff(wantRun, f.Tokens("run")); diff != "" {
				t.Errorf("run tokens mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantLogs, f.Tokens("logs")); diff != "" {
				t.Errorf("logs tokens mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"logs", "run"}, f.Sections()); diff != "" {
				t.Errorf("Sections() mismatch (-want +got):\n%s", diff)
			}
			if got := f.Tokens("status"); got != nil {
				t.Errorf("missing section tokens = %v, want nil", got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(writeFile(t, dir, "yopt.ini", "[run]")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.ini) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(writeFile(t, dir, "bad.toml", "[run\n")); err == nil {
		t.Error("Load(bad toml) succeeded")
	}
	if _, err := Load(writeFile(t, dir, "nested.toml", "[run]\n[run.inner]\nx = 1\n")); err == nil {
		t.Error("Load(nested table) succeeded")
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestNilFile(t *testing.T) {
	var f *File
	if f.Tokens("run") != nil || f.Sections() != nil {
		t.Error("nil File returned tokens")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, DefaultName, "[run]\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	found := writeFile(t, root, DefaultName, "[run]\n")
	t.Setenv("YOPT_TEST_CONFIG", "")

	if got, _ := Resolve("explicit.toml", "YOPT_TEST_CONFIG", root); got != "explicit.toml" {
		t.Errorf("explicit: got %q", got)
	}
	if got, _ := Resolve("", "YOPT_TEST_CONFIG", root); got != found {
		t.Errorf("found: got %q, want %q", got, found)
	}
	t.Setenv("YOPT_TEST_CONFIG", "/etc/yopt.yaml")
	if got, _ := Resolve("", "YOPT_TEST_CONFIG", root); got != "/etc/yopt.yaml" {
		t.Errorf("env: got %q", got)
	}
}
