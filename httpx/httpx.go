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

// Package httpx writes reply errors as HTTP responses.
package httpx

import (
	"fmt"
	"net/http"

	"dirpx.dev/birdreply"
	"dirpx.dev/birdreply/adapter"
	"dirpx.dev/birdreply/apis"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// HeaderReplyCode carries the four-digit reply code of an error response.
const HeaderReplyCode = "X-Bird-Reply-Code"

// Writer is a thin adapter that turns a *birdreply.Error into an HTTP
// response using the provided status mapper. A nil Logger disables logging.
type Writer struct {
	Mapper apis.Mapper
	Logger *zap.Logger
}

// Write writes the mapped HTTP status and a JSON body shaped like
// apis.ErrorView:
//
//	{"code": 8001, "kind": "RouteNotFound", "reason": "runtime.route_not_found",
//	 "band": "runtime_error", "text": "Network not found"}
//
// No redaction is performed: everything the error carries is exposed.
// Detail values that have no JSON form are rendered with fmt.Sprint.
func (w Writer) Write(rw http.ResponseWriter, e *birdreply.Error) {
	if e == nil {
		return
	}
	log := w.logger()

	st := w.Mapper.Status(e.Code, e.Reason)
	body, err := marshalView(adapter.ToView(e))
	if err != nil {
		log.Error("cannot encode reply error", zap.Error(err))
		body = nil
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(HeaderReplyCode, e.Code.String())
	rw.WriteHeader(st.HTTP)
	if _, err := rw.Write(body); err != nil {
		log.Debug("cannot write reply error", zap.Error(err))
	}

	log.Info("reply error",
		adapter.DescriptorField(adapter.ToDescriptor(e, st)),
	)
}

// WriteError writes err when it carries a reply (see adapter.FromError) and
// reports whether it did. Other errors are left to the caller.
func (w Writer) WriteError(rw http.ResponseWriter, err error) bool {
	e, ok := adapter.FromError(err)
	if !ok {
		return false
	}
	w.Write(rw, e)
	return true
}

func (w Writer) logger() *zap.Logger {
	if w.Logger == nil {
		return zap.NewNop()
	}
	return w.Logger
}

// marshalView renders v through structpb and protojson so that the body
// follows the JSON mapping of google.protobuf.Struct.
func marshalView(v apis.ErrorView) ([]byte, error) {
	fields := map[string]any{
		"code": v.Code,
		"kind": v.Kind,
		"band": v.Band,
	}
	if v.Reason != "" {
		fields["reason"] = v.Reason
	}
	if v.Text != "" {
		fields["text"] = v.Text
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	if len(v.Details) > 0 {
		details := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(v.Details))}
		for k, d := range v.Details {
			val, err := structpb.NewValue(d)
			if err != nil {
				val = structpb.NewStringValue(fmt.Sprint(d))
			}
			details.Fields[k] = val
		}
		s.Fields["details"] = structpb.NewStructValue(details)
	}
	return protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
}
