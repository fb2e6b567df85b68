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
	"dirpx.dev/birdreply/code"
	"google.golang.org/grpc/codes"
)

type prefixRule struct {
	// prefix is the raw, dot-separated reason prefix (may contain "*").
	// It is normalized and validated when the tries are built.
	prefix string
	// val is the transport status applied when the prefix matches. gRPC
	// values are kept as int until New converts them.
	val int
}

type builder struct {
	// httpDefaults holds per-band HTTP defaults, seeded from defaultHTTP.
	httpDefaults map[code.Band]int
	// grpcDefaults holds per-band gRPC defaults as ints.
	grpcDefaults map[code.Band]int

	// httpOverride holds exact per-code HTTP overrides.
	httpOverride map[code.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints.
	grpcOverride map[code.Code]int

	// httpPrefixes and grpcPrefixes hold reason rules in insertion order.
	// Library rules come first.
	httpPrefixes []prefixRule
	grpcPrefixes []prefixRule

	// fallbacks used when a band has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Band]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Band]int, len(defaultGRPC)),

		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),

		httpPrefixes: make([]prefixRule, 0, len(defaultRules)),
		grpcPrefixes: make([]prefixRule, 0, len(defaultRules)),

		fallbackHTTP: defaultFallbackHTTP,
		fallbackGRPC: defaultFallbackGRPC,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	for _, r := range defaultRules {
		b.httpPrefixes = append(b.httpPrefixes, prefixRule{r.prefix, r.http})
		b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{r.prefix, int(r.grpc)})
	}
	return b
}
