/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/birdreply"
	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/mapper/internal/segmenttrie"
	"dirpx.dev/birdreply/reason"
	"google.golang.org/grpc/codes"
)

// ErrInvalidPrefix is returned by New when a reason prefix cannot be
// compiled into a rule.
var ErrInvalidPrefix = segmenttrie.ErrInvalidPrefix

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (band defaults and reason rules).
//  2. Apply user-provided options.
//  3. Normalize every reason prefix and compile the HTTP and gRPC tries.
//  4. Freeze maps into fresh copies.
//
// Errors returned from this function indicate invalid prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	httpTrie := segmenttrie.New[int]()
	for _, r := range b.httpPrefixes {
		if err := httpTrie.Insert(reason.Normalize(r.prefix), r.val); err != nil {
			return nil, fmt.Errorf("mapper: HTTP reason prefix %q: %w", r.prefix, err)
		}
	}
	grpcTrie := segmenttrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		if err := grpcTrie.Insert(reason.Normalize(r.prefix), codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: gRPC reason prefix %q: %w", r.prefix, err)
		}
	}

	return &mapper{
		httpDefault:  clone(b.httpDefaults, identity),
		grpcDefault:  clone(b.grpcDefaults, toGRPC),
		httpOverride: clone(b.httpOverride, identity),
		grpcOverride: clone(b.grpcOverride, toGRPC),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is New that panics on error. Intended for package-level
// variables built from constant rules.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// ForMessage resolves the statuses of a decoded reply.
func ForMessage(m apis.Mapper, msg birdreply.Message) apis.Status {
	return m.Status(msg.Code(), msg.Reason())
}

// mapper combines exact per-code overrides, a segment trie over reply
// reasons and per-band defaults. It is safe for concurrent use once
// constructed.
type mapper struct {
	httpDefault map[code.Band]int
	grpcDefault map[code.Band]codes.Code

	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// source names the tier that resolved a status.
type source string

const (
	sourceOverride source = "override"
	sourcePrefix   source = "prefix"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

// resolution is the outcome of a lookup with enough context for Explain.
type resolution[T any] struct {
	val     T
	src     source
	pattern string
}

// HTTPStatus resolves an HTTP status for the given code and reason.
//
// Resolution order (highest to lowest):
//  1. exact per-code override;
//  2. longest-prefix-match rule on the reason;
//  3. default of the band the code belongs to;
//  4. fallback (502 unless configured).
func (m *mapper) HTTPStatus(c code.Code, r reason.Reason) int {
	return resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP).val
}

// GRPCStatus resolves a gRPC status with the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(c code.Code, r reason.Reason) codes.Code {
	return resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC).val
}

// Status resolves both HTTP and gRPC using the same inputs.
func (m *mapper) Status(c code.Code, r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c, r),
		GRPC: m.GRPCStatus(c, r),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (code, reason) pair.
//
// Example output:
//
//	code=8001 band=runtime_error reason="runtime.route_not_found"
//	http: source=prefix pattern="runtime.route_not_found" -> 404
//	grpc: source=prefix pattern="runtime.route_not_found" -> NOT_FOUND(5)
//
// The format is meant for people and golden tests, not for parsing.
func (m *mapper) Explain(c code.Code, r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%s band=%s reason=%q\n", c, c.Band(), r)

	h := resolve(c, r, m.httpOverride, m.httpTrie, m.httpDefault, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", h.describe(c), h.val)

	g := resolve(c, r, m.grpcOverride, m.grpcTrie, m.grpcDefault, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", g.describe(c), GRPCName(g.val), int(g.val))

	return b.String()
}

func (r resolution[T]) describe(c code.Code) string {
	switch r.src {
	case sourcePrefix:
		return fmt.Sprintf("source=prefix pattern=%q", r.pattern)
	case sourceDefault:
		return fmt.Sprintf("source=default band=%s", c.Band())
	default:
		return "source=" + string(r.src)
	}
}

func resolve[T any](c code.Code, r reason.Reason, override map[code.Code]T, trie *segmenttrie.Trie[T], defaults map[code.Band]T, fallback T) resolution[T] {
	if v, ok := override[c]; ok {
		return resolution[T]{val: v, src: sourceOverride}
	}
	if v, ok, pat := trie.MatchWithPattern(string(r)); ok {
		return resolution[T]{val: v, src: sourcePrefix, pattern: pat}
	}
	if v, ok := defaults[c.Band()]; ok {
		return resolution[T]{val: v, src: sourceDefault}
	}
	return resolution[T]{val: fallback, src: sourceFallback}
}
