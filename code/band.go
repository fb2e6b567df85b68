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
	"errors"
	"strings"
)

// Band is the coarse category of a reply code, derived from its thousands
// digit.
type Band uint8

const (
	// BandUnknown covers 3xxx-7xxx and everything above Max.
	BandUnknown Band = iota
	// BandInformational is 0xxx: action successfully completed.
	BandInformational
	// BandTableEntry is 1xxx: one row of a listing.
	BandTableEntry
	// BandTableHeader is 2xxx: heading of a listing.
	BandTableHeader
	// BandRuntimeError is 8xxx: the command failed while executing.
	BandRuntimeError
	// BandClientError is 9xxx: the command was rejected by the parser.
	BandClientError
)

// ErrBandInvalid is returned by ParseBand for an unrecognized band name.
var ErrBandInvalid = errors.New("birdreply: invalid band")

type bandInfo struct {
	name   string
	prefix string
}

var bands = [...]bandInfo{
	BandUnknown:       {"unknown", "unknown"},
	BandInformational: {"informational", "info"},
	BandTableEntry:    {"table_entry", "table"},
	BandTableHeader:   {"table_header", "header"},
	BandRuntimeError:  {"runtime_error", "runtime"},
	BandClientError:   {"client_error", "client"},
}

// Band classifies c by its thousands digit. Codes above Max and the
// undocumented 3xxx-7xxx range are BandUnknown.
func (c Code) Band() Band {
	if !c.Valid() {
		return BandUnknown
	}
	switch c / 1000 {
	case 0:
		return BandInformational
	case 1:
		return BandTableEntry
	case 2:
		return BandTableHeader
	case 8:
		return BandRuntimeError
	case 9:
		return BandClientError
	default:
		return BandUnknown
	}
}

// IsError reports whether the band signals a failed command.
func (b Band) IsError() bool {
	return b == BandRuntimeError || b == BandClientError
}

// String returns the snake_case name of the band, e.g. "runtime_error".
func (b Band) String() string {
	if int(b) < len(bands) {
		return bands[b].name
	}
	return bands[BandUnknown].name
}

// Prefix returns the first reason segment shared by every reply kind in the
// band, e.g. "runtime" for BandRuntimeError.
func (b Band) Prefix() string {
	if int(b) < len(bands) {
		return bands[b].prefix
	}
	return bands[BandUnknown].prefix
}

// ParseBand looks a band up by its name or its reason prefix. The input is
// trimmed and lowercased; '-' is accepted in place of '_'.
func ParseBand(s string) (Band, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	for i, b := range bands {
		if s == b.name || s == b.prefix {
			return Band(i), nil
		}
	}
	return BandUnknown, ErrBandInvalid
}

// MarshalText implements encoding.TextMarshaler.
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Band) UnmarshalText(text []byte) error {
	parsed, err := ParseBand(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
