// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argval provides yopt converters for values beyond the
// primitives: versions, identifiers, digests, URLs, ports and
// comma-separated lists.
package argval

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/yeetrun/yopt/pkg/yopt"
)

// Port is a TCP or UDP port number.
type Port uint16

func (p Port) String() string {
	return strconv.FormatUint(uint64(p), 10)
}

// SemVer converts a semantic version such as "1.2.3" or "v1.2". A missing
// minor or patch component is accepted.
func SemVer(token string) (*semver.Version, bool) {
	v, err := semver.NewVersion(token)
	if err != nil {
		return nil, false
	}
	return v, true
}

// SemVerConstraint converts a version constraint such as ">= 1.2, < 2".
func SemVerConstraint(token string) (*semver.Constraints, bool) {
	c, err := semver.NewConstraint(token)
	if err != nil {
		return nil, false
	}
	return c, true
}

func UUID(token string) (uuid.UUID, bool) {
	id, err := uuid.Parse(token)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// Digest converts a content digest such as "sha256:<hex>". The digest
// must use a registered algorithm and have the right length.
func Digest(token string) (digest.Digest, bool) {
	d, err := digest.Parse(token)
	if err != nil {
		return "", false
	}
	return d, true
}

// URL converts an absolute URL. Relative references are rejected since a
// flag value has no base to resolve against.
func URL(token string) (*url.URL, bool) {
	u, err := url.Parse(token)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, false
	}
	return u, true
}

// PortNumber converts a port in 0-65535.
func PortNumber(token string) (Port, bool) {
	p, err := strconv.ParseUint(token, 10, 16)
	if err != nil {
		return 0, false
	}
	return Port(p), true
}

// PortRange returns a converter that only accepts ports in [min, max].
func PortRange(min, max Port) yopt.Converter[Port] {
	return func(token string) (Port, bool) {
		p, ok := PortNumber(token)
		if !ok || p < min || p > max {
			return 0, false
		}
		return p, true
	}
}

// CSV splits a comma-separated list and converts each element with conv.
// Empty elements are skipped, so "a,,b" has two elements and "" has none.
// Any element failing conversion fails the whole list.
func CSV[T any](conv yopt.Converter[T]) yopt.Converter[[]T] {
	return func(token string) ([]T, bool) {
		parts := strings.Split(token, ",")
		out := make([]T, 0, len(parts))
		for _, part := range parts {
			if part == "" {
				continue
			}
			v, ok := conv(part)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	}
}

// OneOf returns a converter that accepts only the listed literals.
func OneOf(choices ...string) yopt.Converter[string] {
	return func(token string) (string, bool) {
		for _, c := range choices {
			if token == c {
				return token, true
			}
		}
		return "", false
	}
}
