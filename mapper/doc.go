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

// Package mapper resolves BIRD reply codes (dirpx.dev/birdreply/code) and
// the reasons of their kinds (dirpx.dev/birdreply/reason) into HTTP and gRPC
// statuses, for gateways that expose the BIRD control socket over those
// transports.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the reply code;
//  2. longest-prefix match (LPM) on the reason;
//  3. default of the band the code belongs to;
//  4. fallback (502 / codes.Unknown).
//
// Prefix rules are segment-aware: reasons are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix("runtime", http.StatusInternalServerError)
//	WithHTTPPrefix("runtime.protocol_down", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Library defaults
//
// Informational and table replies map to 200 / OK, run-time errors to
// 500 / Internal and client errors to 400 / InvalidArgument. A handful of
// reason rules refine those: a missing route or protocol is 404 / NotFound,
// a down protocol is 503 / Unavailable, a restricted socket is 403 /
// PermissionDenied, an overlong command is 413, and replies of unknown
// codes are 502 / Unknown. User rules for the same prefix replace them.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.RouteNotFound, http.StatusGone),
//	    mapper.WithGRPCPrefix("runtime.reload_failed", int(codes.Aborted)),
//	)
//	if err != nil {
//	    // invalid prefix
//	}
//
//	st := mapper.ForMessage(m, birdreply.Decode(8001, "Network not found"))
//	// st.HTTP == 410, st.GRPC == codes.NotFound
//
// Rules can also be loaded from TOML with LoadConfig.
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (code, reason) pair
// was resolved, including which tier matched and, for prefixes, which
// pattern was used.
//
// # Immutability
//
// All inputs are copied during New. A Mapper is safe to share across
// goroutines.
package mapper
