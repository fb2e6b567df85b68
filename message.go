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

import (
	"fmt"

	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
)

// Message is one classified reply line.
//
// It is a tagged union: Kind selects the variant, and the payload is the
// reply text plus, for code-carrying kinds, the original code. Messages are
// plain values; all fields are unexported so a Message cannot change after
// construction. The zero Message is OK.
type Message struct {
	kind Kind
	code code.Code
	text string
}

// New builds a message of kind k with the given text.
//
// Discrete kinds get their fixed code. Code-carrying kinds get their nominal
// code (2000, 8008, 9003, or 10000 for Unknown), which decodes back to the
// same kind. OK drops the text. An undeclared Kind becomes Unknown.
func New(k Kind, text string) Message {
	return NewCoded(k, k.Code(), text)
}

// NewCoded builds a message of kind k carrying code c.
//
// The code is only kept by code-carrying kinds; discrete kinds always use
// their fixed code and ignore c. No range check is applied, so a caller may
// build e.g. a RuntimeError carrying 9050; Encode returns whatever was given.
func NewCoded(k Kind, c code.Code, text string) Message {
	if !k.Valid() {
		k = Unknown
	}
	ki := kinds[k]
	if !ki.carries {
		c = ki.code
	}
	if k == OK {
		text = ""
	}
	return Message{kind: k, code: c, text: text}
}

// Kind returns the variant tag.
func (m Message) Kind() Kind {
	return m.kind
}

// Code returns the code the message encodes to. It is the same as Encode(m).
func (m Message) Code() code.Code {
	return Encode(m)
}

// Text returns the payload as given to Decode. It is empty for OK.
func (m Message) Text() string {
	return m.text
}

// Band returns the band of the message kind. Unknown messages report
// code.BandUnknown even when the carried code falls into a known band.
func (m Message) Band() code.Band {
	return m.kind.Band()
}

// Reason returns the dotted name of the message kind.
func (m Message) Reason() reason.Reason {
	return m.kind.Reason()
}

// IsError reports whether the reply signals a failed command (8xxx or 9xxx).
func (m Message) IsError() bool {
	return m.Band().IsError()
}

// Err returns the message as an *Error when it is a run-time or parse-time
// error, and nil otherwise.
func (m Message) Err() error {
	if !m.IsError() {
		return nil
	}
	return E(m)
}

// Equal reports whether m and o are the same variant with the same payload.
func (m Message) Equal(o Message) bool {
	return m.kind == o.kind && Encode(m) == Encode(o) && m.text == o.text
}

// String renders the message the way the daemon would send it as a final
// line: the code, a space, and the text.
func (m Message) String() string {
	if m.text == "" {
		return Encode(m).String()
	}
	return fmt.Sprintf("%s %s", Encode(m), m.text)
}

// GoString renders the message for %#v, e.g.
// birdreply.RouteNotFound(8001, "Network not found").
func (m Message) GoString() string {
	return fmt.Sprintf("birdreply.%s(%d, %q)", m.kind, uint32(Encode(m)), m.text)
}
