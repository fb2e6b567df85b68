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

import "dirpx.dev/birdreply/code"

// Encode returns the reply code of m.
//
// Discrete kinds encode to their fixed code and code-carrying kinds to the
// code they carry, so Encode(Decode(c, text)) == c for every c.
func Encode(m Message) code.Code {
	ki := m.kind.info()
	if ki.carries {
		return m.code
	}
	return ki.code
}
