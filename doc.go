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

// Package birdreply classifies reply lines of the BIRD routing daemon's
// control protocol.
//
// A client that has already split a reply line into its numeric code and
// text hands both to Decode and gets back a Message: a typed, exhaustively
// classified value. Encode turns a Message back into its code.
//
//	m := birdreply.Decode(1002, "bgp1  BGP  ---  up  2025-01-01  Established")
//	switch m.Kind() {
//	case birdreply.ProtocolList:
//	    rows = append(rows, m.Text())
//	case birdreply.RuntimeError, birdreply.ClientError:
//	    return m.Err()
//	}
//
// # Classification
//
// Each individually documented code has its own Kind. Codes that fall into
// a band without being documented individually are kept in a banded kind
// that remembers the code:
//
//   - TableHeader: 2000-2999 except 2002 and 2005;
//   - RuntimeError: 8008-8999;
//   - ClientError: 9003-9999.
//
// Every other code, including values that do not fit the four digit wire
// format, yields Unknown. Decode never fails and never loses information:
// Encode(Decode(c, text)) == c and Decode(c, text).Text() == text for every
// code c (text is dropped only for OK, code 0000).
//
// # Errors
//
// Replies in the 8xxx and 9xxx bands are failures. Message.Err turns them
// into an *Error, which carries the code, the kind reason and the text and
// can be mapped to HTTP and gRPC statuses with package mapper.
//
// Decode, Encode and every Message method are pure and safe for concurrent
// use.
package birdreply
