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
	"encoding"
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Code
	}{
		{"zero", "0", OK},
		{"padded zero", "0000", OK},
		{"padded welcome", "0001", Welcome},
		{"unpadded", "13", StatusReport},
		{"with spaces", "  8001  ", RouteNotFound},
		{"table entry", "1002", ProtocolList},
		{"max", "9999", Max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"five digits", "10000"},
		{"sign", "-1"},
		{"plus", "+1"},
		{"hex", "0x1f"},
		{"trailing text", "0001 BIRD"},
		{"continuation marker", "1002-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if !errors.Is(err, ErrCodeInvalid) {
				t.Fatalf("Parse(%q) = %d, %v; want ErrCodeInvalid", tt.in, got, err)
			}
			if got != 0 {
				t.Fatalf("Parse(%q) on error must return 0, got %d", tt.in, got)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("abcd")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	if c := MustParse("9001"); c != ParseError {
		t.Fatalf("MustParse(valid) = %d, want %d", c, ParseError)
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		in   Code
		want string
	}{
		{OK, "0000"},
		{StatusReport, "0013"},
		{Code(999), "0999"},
		{BirdVersion, "1000"},
		{Max, "9999"},
		{Code(12345), "12345"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("Code(%d).String() = %q, want %q", uint32(tt.in), got, tt.want)
		}
	}
}

func TestCode_Valid(t *testing.T) {
	if !Max.Valid() {
		t.Fatalf("Max must be valid")
	}
	if (Max + 1).Valid() {
		t.Fatalf("Max+1 must not be valid")
	}
}

func TestCode_MarshalText(t *testing.T) {
	text, err := Welcome.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "0001" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "0001")
	}

	if _, err := Code(10000).MarshalText(); !errors.Is(err, ErrCodeInvalid) {
		t.Fatalf("MarshalText() on out-of-protocol code must return ErrCodeInvalid, got %v", err)
	}
}

func TestCode_UnmarshalText(t *testing.T) {
	var c Code
	if err := c.UnmarshalText([]byte("  8005 ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if c != ProtocolDown {
		t.Fatalf("UnmarshalText() = %d, want %d", c, ProtocolDown)
	}

	bad := Code(7)
	if err := bad.UnmarshalText([]byte("x1")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
	if bad != 7 {
		t.Fatalf("UnmarshalText() must not modify the code on error, got %d", bad)
	}
}

func TestCode_TextRoundTrip(t *testing.T) {
	for _, c := range []Code{OK, Welcome, 999, InterfaceSummaryHeader, RuntimeErrorMax, Max} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", c, err)
		}
		var back Code
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != c {
			t.Fatalf("round trip %d -> %q -> %d", c, text, back)
		}
	}
}

func TestCode_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Code)(nil)
	var _ encoding.TextUnmarshaler = (*Code)(nil)
}

func TestBandBoundsAreConsistent(t *testing.T) {
	// Discrete codes must sit right below the banded ranges they precede.
	if TableHeaderMin.Band() != BandTableHeader || TableHeaderMax.Band() != BandTableHeader {
		t.Fatalf("table header bounds out of band")
	}
	if RuntimeErrorMin != AccessDenied+1 {
		t.Fatalf("RuntimeErrorMin = %d, want %d", RuntimeErrorMin, AccessDenied+1)
	}
	if ClientErrorMin != InvalidSymbol+1 {
		t.Fatalf("ClientErrorMin = %d, want %d", ClientErrorMin, InvalidSymbol+1)
	}
	if ClientErrorMax != Max {
		t.Fatalf("ClientErrorMax = %d, want %d", ClientErrorMax, Max)
	}
}
