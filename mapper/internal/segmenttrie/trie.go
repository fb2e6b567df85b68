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

// Package segmenttrie implements a prefix index over dot-separated keys.
package segmenttrie

import (
	"errors"
	"strings"
)

// Wildcard is the segment that matches exactly one arbitrary segment.
const Wildcard = "*"

// Trie is a segment-aware prefix index for dot-separated keys such as
// "runtime.route_not_found". Each node is one segment. Lookups return the
// value of the deepest inserted prefix, so a more specific rule wins over a
// shorter one; at equal depth an exact segment wins over Wildcard.
//
// A Trie is not safe for concurrent Insert, but any number of goroutines
// may call Match once inserts are done.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, reported by MatchWithPattern.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with prefix, replacing any earlier value for the
// same prefix.
//
// Examples:
//
//	"runtime"
//	"runtime.protocol_down"
//	"*.error"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	concrete := false
	for _, s := range segs {
		if s == Wildcard {
			continue
		}
		if !validSegment(s) {
			return ErrInvalidPrefix
		}
		concrete = true
	}
	if !concrete {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		next, ok := cur.children[s]
		if !ok {
			next = New[T]()
			cur.children[s] = next
		}
		cur = next
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix of key, or false when no
// inserted prefix matches. Keys with invalid segments match only up to the
// first invalid segment.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matching prefix as it was
// inserted.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, _ := t.walk(key, 0, nil, -1)
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// walk descends from t consuming key, which holds the segments not yet
// matched. It returns the deepest node carrying a value found so far along
// with its depth.
func (t *Trie[T]) walk(key string, depth int, best *Trie[T], bestDepth int) (*Trie[T], int) {
	if t.hasVal && depth > bestDepth {
		best, bestDepth = t, depth
	}
	if key == "" {
		return best, bestDepth
	}

	seg, rest := key, ""
	if i := strings.IndexByte(key, '.'); i >= 0 {
		seg, rest = key[:i], key[i+1:]
		if rest == "" {
			// trailing dot
			return best, bestDepth
		}
	}
	if !validSegment(seg) {
		return best, bestDepth
	}

	// Exact first: at equal depth the first node found is kept.
	if next, ok := t.children[seg]; ok {
		best, bestDepth = next.walk(rest, depth+1, best, bestDepth)
	}
	if next, ok := t.children[Wildcard]; ok {
		best, bestDepth = next.walk(rest, depth+1, best, bestDepth)
	}
	return best, bestDepth
}

// validSegment reports whether seg matches [a-z][a-z0-9_]*.
func validSegment(seg string) bool {
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
