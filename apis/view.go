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

package apis

// ErrorView is the shape of a failed reply that is safe to expose over the
// wire or to log.
//
// This is *not* the concrete error type. Keeping it here lets the HTTP and
// gRPC adapters share the same struct.
type ErrorView struct {
	// Code is the reply code, e.g. 8001.
	Code uint32 `json:"code"`
	// Kind is the Go name of the reply kind, e.g. "RouteNotFound".
	Kind string `json:"kind"`
	// Reason is the dotted kind name, e.g. "runtime.route_not_found".
	Reason string `json:"reason,omitempty"`
	// Band is the band name, e.g. "runtime_error".
	Band string `json:"band"`
	// Text is the reply text as sent by the daemon.
	Text string `json:"text,omitempty"`
	// Details holds extra key/values attached to the error.
	Details map[string]any `json:"details,omitempty"`
}
