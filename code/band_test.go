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
	"testing"
)

func TestCode_Band(t *testing.T) {
	tests := []struct {
		in   Code
		want Band
	}{
		{OK, BandInformational},
		{GracefulRestartOrdered, BandInformational},
		{Code(999), BandInformational},
		{BirdVersion, BandTableEntry},
		{Code(1999), BandTableEntry},
		{ProtocolListHeader, BandTableHeader},
		{Code(2500), BandTableHeader},
		{Code(3000), BandUnknown},
		{Code(7999), BandUnknown},
		{ReplyTooLong, BandRuntimeError},
		{RuntimeErrorMax, BandRuntimeError},
		{CommandTooLong, BandClientError},
		{Max, BandClientError},
		{Code(10000), BandUnknown},
		{Code(19001), BandUnknown},
	}
	for _, tt := range tests {
		if got := tt.in.Band(); got != tt.want {
			t.Fatalf("Code(%d).Band() = %v, want %v", uint32(tt.in), got, tt.want)
		}
	}
}

func TestBand_IsError(t *testing.T) {
	for _, b := range []Band{BandRuntimeError, BandClientError} {
		if !b.IsError() {
			t.Fatalf("%v must be an error band", b)
		}
	}
	for _, b := range []Band{BandUnknown, BandInformational, BandTableEntry, BandTableHeader} {
		if b.IsError() {
			t.Fatalf("%v must not be an error band", b)
		}
	}
}

func TestParseBand(t *testing.T) {
	tests := []struct {
		in   string
		want Band
	}{
		{"informational", BandInformational},
		{"info", BandInformational},
		{"TABLE_ENTRY", BandTableEntry},
		{"table-header", BandTableHeader},
		{" runtime_error ", BandRuntimeError},
		{"runtime", BandRuntimeError},
		{"client", BandClientError},
		{"unknown", BandUnknown},
	}
	for _, tt := range tests {
		got, err := ParseBand(tt.in)
		if err != nil {
			t.Fatalf("ParseBand(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseBand(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseBand("fatal"); !errors.Is(err, ErrBandInvalid) {
		t.Fatalf("ParseBand(fatal) must return ErrBandInvalid, got %v", err)
	}
}

func TestBand_StringAndPrefix(t *testing.T) {
	if BandRuntimeError.String() != "runtime_error" {
		t.Fatalf("String() = %q", BandRuntimeError.String())
	}
	if BandTableHeader.Prefix() != "header" {
		t.Fatalf("Prefix() = %q", BandTableHeader.Prefix())
	}
	if Band(200).String() != "unknown" || Band(200).Prefix() != "unknown" {
		t.Fatalf("out-of-range band must render as unknown")
	}
}

func TestBand_TextRoundTrip(t *testing.T) {
	for b := BandUnknown; b <= BandClientError; b++ {
		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", b, err)
		}
		var back Band
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != b {
			t.Fatalf("round trip %v -> %q -> %v", b, text, back)
		}
	}
}
