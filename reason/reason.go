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

package reason

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Reason is the canonical, validated name of a reply kind.
//
// Reasons are dot-separated identifiers of one to four segments. The first
// segment is the band prefix, the following ones narrow it down:
//
//   - "runtime.route_not_found"
//   - "table.ospf_neighbors"
//   - "unknown"
type Reason string

// MinLength and MaxLength define the allowed length range for a non-empty
// reason.
const (
	MinLength = 3
	MaxLength = 128
)

const (
	// reasonFmt accepts 1 to 4 segments, each [a-z][a-z0-9_]*.
	//
	// The empty string is handled separately and never reaches the regexp.
	reasonFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var reasonRe = regexp.MustCompile(reasonFmt)

var (
	// ErrReasonInvalidFormat is returned when a reason does not conform to
	// the expected format.
	ErrReasonInvalidFormat = errors.New("birdreply: invalid reason format")
	// ErrReasonInvalidLength is returned when a reason is too short or too long.
	ErrReasonInvalidLength = errors.New("birdreply: invalid reason length")
)

var (
	_ encoding.TextMarshaler   = (*Reason)(nil)
	_ encoding.TextUnmarshaler = (*Reason)(nil)
)

// Empty is the zero-value reason, meaning "not known".
var Empty Reason = ""

// Normalize brings an arbitrary string closer to the canonical form:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "."
//   - replace "-" and " " with "_"
//
// It does NOT guarantee validity; callers should still call Parse.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Parse normalizes and validates s.
//
// The empty string yields Empty without error.
func Parse(s string) (Reason, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Reason(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Reason {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if r == Empty {
		panic("birdreply: empty reason in MustParse")
	}
	return r
}

// Validate checks whether r is in canonical form. Empty is valid.
func Validate(r Reason) error {
	if r == Empty {
		return nil
	}
	return validate(string(r))
}

// String returns the canonical string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// Root returns the first segment, which is the band prefix for every reason
// produced by a reply kind.
func (r Reason) Root() string {
	s := string(r)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// HasPrefix reports whether prefix names r itself or one of its ancestors.
// Matching is segment aware: "runtime.route" is not a prefix of
// "runtime.route_not_found".
func (r Reason) HasPrefix(prefix Reason) bool {
	if prefix == Empty {
		return true
	}
	s, p := string(r), string(prefix)
	if !strings.HasPrefix(s, p) {
		return false
	}
	return len(s) == len(p) || s[len(p)] == '.'
}

// MarshalText implements encoding.TextMarshaler.
func (r Reason) MarshalText() ([]byte, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}
	return []byte(r), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty or whitespace-only input produces Empty.
func (r *Reason) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrReasonInvalidLength
	}
	if !reasonRe.MatchString(s) {
		return ErrReasonInvalidFormat
	}
	return nil
}
