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

// Package adapter flattens replies and reply errors into the plain shapes of
// package apis and into structured log fields.
package adapter

import (
	"errors"

	"dirpx.dev/birdreply"
	"dirpx.dev/birdreply/apis"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FromError finds the reply error in err's chain. A *birdreply.Error is
// returned as-is; any other apis.CodedError is rebuilt from its code, along
// with its reason and text when it implements apis.ReasonedError and
// apis.TextError.
func FromError(err error) (*birdreply.Error, bool) {
	if e, ok := birdreply.AsError(err); ok {
		return e, true
	}
	var ce apis.CodedError
	if !errors.As(err, &ce) {
		return nil, false
	}
	var text string
	if te, ok := ce.(apis.TextError); ok {
		text = te.ReplyText()
	}
	e := birdreply.E(birdreply.Decode(ce.ReplyCode(), text), birdreply.WithCauseOption(ce))
	if re, ok := ce.(apis.ReasonedError); ok && re.ReplyReason() != "" {
		e.Reason = re.ReplyReason()
	}
	return e, true
}

// ToDescriptor converts a reply error together with its resolved transport
// status into a portable Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the reply identity and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *birdreply.Error, st apis.Status) apis.Descriptor {
	if e == nil {
		return apis.Descriptor{}
	}
	m := e.Reply()
	return apis.Descriptor{
		Code:       uint32(e.Code),
		Kind:       m.Kind().String(),
		Reason:     string(e.Reason),
		Band:       m.Band().String(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Text:       e.Text,
	}
}

// ToView converts a reply error into a public ErrorView. It performs no
// redaction: the view exposes exactly what the error carries. Details are
// copied.
func ToView(e *birdreply.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	m := e.Reply()
	v := apis.ErrorView{
		Code:   uint32(e.Code),
		Kind:   m.Kind().String(),
		Reason: string(e.Reason),
		Band:   m.Band().String(),
		Text:   e.Text,
	}
	if len(e.Details) > 0 {
		v.Details = make(map[string]any, len(e.Details))
		for k, val := range e.Details {
			v.Details[k] = val
		}
	}
	return v
}

// MessageView is ToView for any reply, failed or not.
func MessageView(m birdreply.Message) apis.ErrorView {
	return apis.ErrorView{
		Code:   uint32(m.Code()),
		Kind:   m.Kind().String(),
		Reason: m.Reason().String(),
		Band:   m.Band().String(),
		Text:   m.Text(),
	}
}

// Fields returns the log fields describing a reply.
func Fields(m birdreply.Message) []zap.Field {
	fs := []zap.Field{
		zap.Stringer("reply_code", m.Code()),
		zap.Stringer("reply_kind", m.Kind()),
		zap.Stringer("reply_band", m.Band()),
	}
	if t := m.Text(); t != "" {
		fs = append(fs, zap.String("reply_text", t))
	}
	return fs
}

// DescriptorField logs d as a nested object under the "reply" key.
func DescriptorField(d apis.Descriptor) zap.Field {
	return zap.Object("reply", descriptorMarshaler(d))
}

type descriptorMarshaler apis.Descriptor

func (d descriptorMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("code", d.Code)
	enc.AddString("kind", d.Kind)
	if d.Reason != "" {
		enc.AddString("reason", d.Reason)
	}
	enc.AddString("band", d.Band)
	if d.HTTPStatus != 0 {
		enc.AddInt("http_status", d.HTTPStatus)
	}
	enc.AddInt("grpc_code", d.GRPCCode)
	if d.Text != "" {
		enc.AddString("text", d.Text)
	}
	return nil
}
