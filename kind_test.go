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
	"strings"
	"testing"

	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
)

func TestKinds_TableIsComplete(t *testing.T) {
	all := Kinds()
	if len(all) != int(kindCount) {
		t.Fatalf("Kinds() returned %d kinds, want %d", len(all), kindCount)
	}
	for _, k := range all {
		if k.String() == "" {
			t.Fatalf("kind %d has no name", k)
		}
		if err := reason.Validate(k.Reason()); err != nil || k.Reason() == reason.Empty {
			t.Fatalf("kind %v has invalid reason %q: %v", k, k.Reason(), err)
		}
		if k.Reason().Root() != k.Band().Prefix() {
			t.Fatalf("kind %v: reason %q does not start with band prefix %q", k, k.Reason(), k.Band().Prefix())
		}
		if k.CarriesCode() {
			continue
		}
		if k.Code().Band() != k.Band() {
			t.Fatalf("kind %v: code %d is in band %v, kind is in %v", k, k.Code(), k.Code().Band(), k.Band())
		}
	}
}

func TestKinds_Counts(t *testing.T) {
	counts := map[code.Band]int{}
	carrying := 0
	for _, k := range Kinds() {
		if k.CarriesCode() {
			carrying++
			continue
		}
		counts[k.Band()]++
	}
	want := map[code.Band]int{
		code.BandInformational: 26,
		code.BandTableEntry:    26,
		code.BandTableHeader:   2,
		code.BandRuntimeError:  8,
		code.BandClientError:   3,
	}
	for b, n := range want {
		if counts[b] != n {
			t.Fatalf("band %v has %d discrete kinds, want %d", b, counts[b], n)
		}
	}
	if carrying != 4 {
		t.Fatalf("%d code-carrying kinds, want 4", carrying)
	}
}

func TestKind_NominalCodesDecodeToSameKind(t *testing.T) {
	for _, k := range []Kind{TableHeader, RuntimeError, ClientError, Unknown} {
		if got := Decode(k.Code(), "").Kind(); got != k {
			t.Fatalf("Decode(nominal %d of %v).Kind() = %v", k.Code(), k, got)
		}
	}
}

func TestKind_Invalid(t *testing.T) {
	k := Kind(250)
	if k.Valid() {
		t.Fatalf("Kind(250) must not be valid")
	}
	if k.String() != "Unknown" || k.Reason() != "unknown" || !k.CarriesCode() {
		t.Fatalf("undeclared kind must behave as Unknown")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"RouteNotFound", RouteNotFound},
		{"routenotfound", RouteNotFound},
		{"runtime.route_not_found", RouteNotFound},
		{" header.table ", TableHeader},
		{"OSPFLSADB", OSPFLSADB},
		{"unknown", Unknown},
		{"info.ok", OK},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if !ok || got != tt.want {
			t.Fatalf("ParseKind(%q) = %v, %v; want %v, true", tt.in, got, ok, tt.want)
		}
	}
	for _, in := range []string{"", "runtime.nope", "8001"} {
		if _, ok := ParseKind(in); ok {
			t.Fatalf("ParseKind(%q) must fail", in)
		}
	}
}

func TestKind_NamesAreUnique(t *testing.T) {
	seen := map[string]Kind{}
	for _, k := range Kinds() {
		n := strings.ToLower(k.String())
		if prev, ok := seen[n]; ok {
			t.Fatalf("kinds %v and %v share a name", prev, k)
		}
		seen[n] = k
	}
}
