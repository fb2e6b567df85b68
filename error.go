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
	"errors"
	"fmt"

	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
)

var (
	_ apis.CodedError    = (*Error)(nil)
	_ apis.ReasonedError = (*Error)(nil)
	_ apis.TextError     = (*Error)(nil)
)

// Error is a failed reply turned into a Go error.
//
// It carries:
//   - Code: the reply code as sent by the daemon;
//   - Reason: the dotted name of the reply kind;
//   - Text: the reply text (what went wrong, in the daemon's words);
//   - Details: optional key/value payload (command, socket path, ...);
//   - Cause: optional wrapped error.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared.
type Error struct {
	Code    code.Code
	Reason  reason.Reason
	Text    string
	Details map[string]any
	Cause   error
}

// E builds an Error from a message.
//
//	if err := birdreply.Decode(8001, "Network not found").Err(); err != nil {
//	    return err
//	}
//
// E does not check that m is an error reply; Message.Err does.
func E(m Message, opts ...Option) *Error {
	e := &Error{
		Code:   Encode(m),
		Reason: m.Reason(),
		Text:   m.text,
	}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code> <reason>: <text>
//
// e.g. "8001 runtime.route_not_found: Network not found".
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Text == "" {
		return fmt.Sprintf("%s %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("%s %s: %s", e.Code, e.Reason, e.Text)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Reply decodes the error back into a message.
func (e *Error) Reply() Message {
	return Decode(e.Code, e.Text)
}

// ReplyCode returns the reply code. It lets Error satisfy apis.CodedError.
func (e *Error) ReplyCode() code.Code { return e.Code }

// ReplyReason returns the kind reason. It lets Error satisfy
// apis.ReasonedError.
func (e *Error) ReplyReason() reason.Reason { return e.Reason }

// ReplyText returns the reply text.
func (e *Error) ReplyText() string { return e.Text }

// Is reports whether target is an *Error with the same code. It makes
// errors.Is(err, birdreply.E(birdreply.New(birdreply.RouteNotFound, "")))
// work regardless of text and details.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// WithText returns a shallow copy of e with a replaced text.
func (e *Error) WithText(text string) *Error {
	cp := *e
	cp.Text = text
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details,
// kv taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	for k0, v0 := range cp.Details {
		m[k0] = v0
	}
	for k, v := range kv {
		m[k] = v
	}
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given cause attached.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// AsError finds the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
