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

// Package code provides the numeric reply code of the BIRD control protocol.
//
// Every reply line sent by the daemon over its control socket starts with a
// 1-4 digit code, e.g.:
//
//	0001 BIRD 2.15 ready.
//	1002-bgp1       BGP        ---        up     2025-01-01
//	8001 Network not found
//
// Codes are grouped into bands by their thousands digit:
//
//   - 0xxx: action successfully completed;
//   - 1xxx: table entry;
//   - 2xxx: table heading;
//   - 8xxx: run-time error;
//   - 9xxx: parse-time (client) error.
//
// This package defines the Code value type, the named constants for every
// individually documented code, and the Band classification. Turning a code
// into a typed reply is the job of the root birdreply package.
package code
