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

// Package reason defines the dotted identifier that names a reply kind.
//
// Where code.Code answers "which number did the daemon send?", a Reason
// answers "what does that reply mean?" in a form that is stable, readable
// and easy to match on by prefix:
//
//   - "info.welcome"
//   - "table.route_list"
//   - "header.table"
//   - "runtime.route_not_found"
//   - "client.parse_error"
//
// The first segment is always the band prefix (see code.Band.Prefix), so a
// rule for "runtime" covers every run-time error while a rule for
// "runtime.protocol_down" covers exactly one kind.
//
// The zero value ("") is allowed and means "no reason known".
package reason
