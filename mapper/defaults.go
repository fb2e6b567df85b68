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
	"net/http"

	"dirpx.dev/birdreply/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP maps each reply band to the HTTP status used when neither an
// override nor a reason rule applies. A command that produced
// informational or tabular output succeeded; BandUnknown has no default and
// resolves to the fallback.
var defaultHTTP = map[code.Band]int{
	code.BandInformational: http.StatusOK,
	code.BandTableEntry:    http.StatusOK,
	code.BandTableHeader:   http.StatusOK,
	code.BandRuntimeError:  http.StatusInternalServerError,
	code.BandClientError:   http.StatusBadRequest,
}

// defaultGRPC is the gRPC counterpart of defaultHTTP.
var defaultGRPC = map[code.Band]codes.Code{
	code.BandInformational: codes.OK,
	code.BandTableEntry:    codes.OK,
	code.BandTableHeader:   codes.OK,
	code.BandRuntimeError:  codes.Internal,
	code.BandClientError:   codes.InvalidArgument,
}

// defaultRule refines a band default for one family of replies.
type defaultRule struct {
	prefix string
	http   int
	grpc   codes.Code
}

// defaultRules are seeded into both tries before any user rule, so a user
// rule for the same prefix replaces them.
var defaultRules = []defaultRule{
	// 0xxx
	{"info.access_restricted", http.StatusForbidden, codes.PermissionDenied}, // 0016: the socket is restricted

	// 8xxx
	{"runtime.reply_too_long", http.StatusInternalServerError, codes.ResourceExhausted},
	{"runtime.route_not_found", http.StatusNotFound, codes.NotFound},
	{"runtime.configuration_file_error", http.StatusInternalServerError, codes.FailedPrecondition},
	{"runtime.no_protocols_match", http.StatusNotFound, codes.NotFound},
	{"runtime.stopped_due_to_reconfiguration", http.StatusServiceUnavailable, codes.Aborted},
	{"runtime.protocol_down", http.StatusServiceUnavailable, codes.Unavailable},
	{"runtime.reload_failed", http.StatusInternalServerError, codes.FailedPrecondition},
	{"runtime.access_denied", http.StatusForbidden, codes.PermissionDenied},

	// 9xxx
	{"client.command_too_long", http.StatusRequestEntityTooLarge, codes.InvalidArgument},

	// The daemon answered with a code this package does not know.
	{"unknown", http.StatusBadGateway, codes.Unknown},
}

const (
	defaultFallbackHTTP = http.StatusBadGateway
	defaultFallbackGRPC = codes.Unknown
)
