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

// Decode classifies a reply code and its text.
//
// Decode never fails. The first matching rule wins:
//
//  1. a code with a dedicated kind yields that kind;
//  2. any other 2000-2999 code yields TableHeader;
//  3. any 8008-8999 code yields RuntimeError;
//  4. any 9003-9999 code yields ClientError;
//  5. everything else yields Unknown.
//
// Rules 2-5 keep c in the message. The text is kept as given, except for
// OK which carries none.
func Decode(c code.Code, text string) Message {
	if k, ok := discrete[c]; ok {
		if k == OK {
			text = ""
		}
		return Message{kind: k, code: c, text: text}
	}

	switch {
	case c >= code.TableHeaderMin && c <= code.TableHeaderMax:
		return Message{kind: TableHeader, code: c, text: text}
	case c >= code.RuntimeErrorMin && c <= code.RuntimeErrorMax:
		return Message{kind: RuntimeError, code: c, text: text}
	case c >= code.ClientErrorMin && c <= code.ClientErrorMax:
		return Message{kind: ClientError, code: c, text: text}
	}
	return Message{kind: Unknown, code: c, text: text}
}

// DecodeString is Decode for a textual code such as "0001" or "8001".
// It fails only when s is not a 1-4 digit code.
func DecodeString(s, text string) (Message, error) {
	c, err := code.Parse(s)
	if err != nil {
		return Message{}, err
	}
	return Decode(c, text), nil
}
