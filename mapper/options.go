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

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status for every reply
// in band b that no override or reason rule claims.
func WithHTTPDefault(b code.Band, http int) Option {
	return func(bl *builder) { bl.httpDefaults[b] = http }
}

// WithGRPCDefault sets or replaces the default gRPC status for band b.
func WithGRPCDefault(b code.Band, grpc int) Option {
	return func(bl *builder) { bl.grpcDefaults[b] = grpc }
}

// WithHTTPOverride registers an exact HTTP status for reply code c.
// Overrides take precedence over every other rule.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC status for reply code c.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on the reply reason.
// A more specific prefix wins; "*" matches a single segment.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, http}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on the reply reason.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, grpc}) }
}

// WithFallback replaces the statuses used for replies that match no rule
// and belong to a band without a default (502 and codes.Unknown unless
// changed).
func WithFallback(http int, grpc codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = http
		b.fallbackGRPC = grpc
	}
}
