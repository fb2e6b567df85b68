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

// Descriptor is a flat description of a failed reply together with the
// transport statuses it was mapped to.
//
// It uses plain types (not code.Code / reason.Reason) so that it can be
// logged, traced or put on a message bus without importing the rest of the
// module.
type Descriptor struct {
	Code   uint32 `json:"code"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
	Band   string `json:"band"`

	// HTTPStatus is the mapped HTTP status. A value of 0 means
	// "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the mapped gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	Text string `json:"text,omitempty"`
}
