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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"strconv"
	"strings"
)

// Code is a reply code as sent on the wire.
//
// It is a separate type (not just uint32) so that other packages declare
// explicitly that they expect a protocol code and not an arbitrary number.
// A Code may hold values above Max: such values never appear on the wire
// but still classify (as unknown replies) without error.
type Code uint32

// Max is the highest code the protocol can express with four digits.
const Max Code = 9999

// maxDigits is the width of a code on the wire.
const maxDigits = 4

var (
	// ErrCodeInvalid is returned when a value cannot be parsed as a reply
	// code, or when an out-of-protocol code is marshaled.
	ErrCodeInvalid = errors.New("birdreply: invalid code")
)

var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Parse takes a textual code of 1 to 4 ASCII digits, optionally surrounded
// by spaces, and returns its value. Leading zeros are accepted, so "0013"
// and "13" are the same code.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > maxDigits {
		return 0, ErrCodeInvalid
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrCodeInvalid
		}
	}
	// At most four digits, cannot overflow.
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrCodeInvalid
	}
	return Code(v), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether c fits the four digit wire format.
func (c Code) Valid() bool {
	return c <= Max
}

// String returns the wire form of the code: four digits, zero padded
// ("0013", "8001"). Codes above Max are rendered in plain decimal.
func (c Code) String() string {
	s := strconv.FormatUint(uint64(c), 10)
	if !c.Valid() || len(s) >= maxDigits {
		return s
	}
	return strings.Repeat("0", maxDigits-len(s)) + s
}

// MarshalText implements encoding.TextMarshaler.
//
// Only codes that fit the wire format can be marshaled.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrCodeInvalid
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
