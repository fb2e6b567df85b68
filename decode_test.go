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

package birdreply

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/birdreply/code"
)

func TestDecode_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		code     code.Code
		text     string
		want     Message
		wantKind Kind
	}{
		{"ok drops text", 0, "", Message{kind: OK}, OK},
		{"ok with text", 0, "ignored", Message{kind: OK}, OK},
		{"welcome", 1, "BIRD 2.15 ready.", Message{kind: Welcome, code: 1, text: "BIRD 2.15 ready."}, Welcome},
		{"interface summary", 1005, "eth0 ready", Message{kind: InterfaceSummary, code: 1005, text: "eth0 ready"}, InterfaceSummary},
		{"protocol list header", 2002, "Name Proto Table", Message{kind: ProtocolListHeader, code: 2002, text: "Name Proto Table"}, ProtocolListHeader},
		{"banded header", 2500, "Name  Proto  Table", Message{kind: TableHeader, code: 2500, text: "Name  Proto  Table"}, TableHeader},
		{"configuration file error", 8002, "/etc/bird.conf:3:1 syntax error", Message{kind: ConfigurationFileError, code: 8002, text: "/etc/bird.conf:3:1 syntax error"}, ConfigurationFileError},
		{"banded runtime", 8008, "Runtime error", Message{kind: RuntimeError, code: 8008, text: "Runtime error"}, RuntimeError},
		{"invalid symbol", 9002, "Invalid symbol type", Message{kind: InvalidSymbol, code: 9002, text: "Invalid symbol type"}, InvalidSymbol},
		{"banded client", 9050, "bad token", Message{kind: ClientError, code: 9050, text: "bad token"}, ClientError},
		{"fallback", 12345, "?", Message{kind: Unknown, code: 12345, text: "?"}, Unknown},
		{"gap in informational band", 26, "new", Message{kind: Unknown, code: 26, text: "new"}, Unknown},
		{"undocumented band", 5000, "x", Message{kind: Unknown, code: 5000, text: "x"}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.code, tt.text)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Decode(%d, %q) mismatch (-want +got):\n%s", tt.code, tt.text, diff)
			}
			if got.Kind() != tt.wantKind {
				t.Fatalf("Decode(%d).Kind() = %v, want %v", tt.code, got.Kind(), tt.wantKind)
			}
			if Encode(got) != tt.code {
				t.Fatalf("Encode(Decode(%d)) = %d", tt.code, Encode(got))
			}
		})
	}
}

func TestDecode_RoundTripAllCodes(t *testing.T) {
	const text = "payload"
	for c := code.Code(0); c <= 2*code.Max; c++ {
		m := Decode(c, text)
		if got := Encode(m); got != c {
			t.Fatalf("Encode(Decode(%d)) = %d (kind %v)", c, got, m.Kind())
		}
		if c != code.OK && m.Text() != text {
			t.Fatalf("Decode(%d).Text() = %q, want %q", c, m.Text(), text)
		}
		if !m.Kind().Valid() {
			t.Fatalf("Decode(%d) produced undeclared kind %d", c, m.Kind())
		}
	}
}

func TestDecode_DiscreteCodesHaveDedicatedKinds(t *testing.T) {
	for _, k := range Kinds() {
		if k.CarriesCode() {
			continue
		}
		m := Decode(k.Code(), "x")
		if m.Kind() != k {
			t.Fatalf("Decode(%d).Kind() = %v, want %v", k.Code(), m.Kind(), k)
		}
	}
}

func TestDecode_Bands(t *testing.T) {
	check := func(lo, hi code.Code, want Kind, except ...code.Code) {
		t.Helper()
		skip := make(map[code.Code]bool, len(except))
		for _, c := range except {
			skip[c] = true
		}
		for c := lo; c <= hi; c++ {
			if skip[c] {
				continue
			}
			m := Decode(c, "t")
			if m.Kind() != want || m.Code() != c || m.Text() != "t" {
				t.Fatalf("Decode(%d) = %#v, want %v carrying (%d, %q)", c, m, want, c, "t")
			}
		}
	}
	check(2000, 2999, TableHeader, code.ProtocolListHeader, code.InterfaceSummaryHeader)
	check(8008, 8999, RuntimeError)
	check(9003, 9999, ClientError)
}

func TestDecode_Fallback(t *testing.T) {
	known := func(c code.Code) bool {
		switch {
		case c <= 25, c >= 1000 && c <= 1025, c >= 2000 && c <= 2999, c >= 8000 && c <= 9999:
			return true
		}
		return false
	}
	for c := code.Code(0); c <= 20000; c++ {
		if known(c) {
			continue
		}
		m := Decode(c, "?")
		if m.Kind() != Unknown || Encode(m) != c || m.Text() != "?" {
			t.Fatalf("Decode(%d) = %#v, want Unknown carrying (%d, %q)", c, m, c, "?")
		}
	}
	if m := Decode(code.Code(^uint32(0)), ""); m.Kind() != Unknown || Encode(m) != code.Code(^uint32(0)) {
		t.Fatalf("Decode(max uint32) = %#v", m)
	}
}

func TestDecodeString(t *testing.T) {
	m, err := DecodeString("0013", "BIRD 2.15")
	if err != nil {
		t.Fatalf("DecodeString: %v", err)
	}
	if m.Kind() != StatusReport || m.Text() != "BIRD 2.15" {
		t.Fatalf("DecodeString = %#v", m)
	}

	if _, err := DecodeString("13a", ""); !errors.Is(err, code.ErrCodeInvalid) {
		t.Fatalf("DecodeString(13a) error = %v, want ErrCodeInvalid", err)
	}
}
