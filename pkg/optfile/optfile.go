// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile loads option defaults from a configuration file and
// turns them into fallback argument tokens.
//
// A file has one table per command, each mapping option keys to scalar
// values or lists of scalars:
//
//	[run]
//	net = "ts"
//	restart = false
//	ts-tags = ["tag:app", "tag:web"]
//
//	[logs]
//	lines = 100
package optfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultName is the file looked up by Find.
const DefaultName = "yopt.toml"

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported defaults file format")

// File holds the option defaults read from Path, as tokens ready to be
// used as fallback arguments.
type File struct {
	Path     string
	sections map[string][]string
}

// Load reads path. The format is chosen by extension: .toml, .yaml, .yml
// or .json.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]map[string]any)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	f := &File{Path: path, sections: make(map[string][]string, len(raw))}
	for section, values := range raw {
		tokens, err := sectionTokens(values)
		if err != nil {
			return nil, fmt.Errorf("%s: [%s] %w", path, section, err)
		}
		f.sections[section] = tokens
	}
	return f, nil
}

// Tokens returns the "--key value" tokens of section, sorted by key. A
// nil File or a missing section has no tokens.
func (f *File) Tokens(section string) []string {
	if f == nil {
		return nil
	}
	return f.sections[section]
}

// Sections returns the section names in sorted order.
func (f *File) Sections() []string {
	if f == nil {
		return nil
	}
	out := make([]string, 0, len(f.sections))
	for name := range f.sections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func sectionTokens(values map[string]any) ([]string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	tokens := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		v, err := render(values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		tokens = append(tokens, "--"+k, v)
	}
	return tokens, nil
}

func render(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			if _, ok := e.([]any); ok {
				return "", errors.New("nested lists are not supported")
			}
			s, err := render(e)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	case nil:
		return "", errors.New("null values are not supported")
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}

// Find looks for DefaultName in startDir and its parents.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, DefaultName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Resolve picks the defaults file to use: explicit if set, then the file
// named by the env variable, then Find from dir. It returns "" with a nil
// error when no file exists.
func Resolve(explicit, envName, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(envName); envName != "" && p != "" {
		return p, nil
	}
	p, err := Find(dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	return p, err
}
