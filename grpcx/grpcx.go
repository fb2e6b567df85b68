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

// Package grpcx projects reply errors onto gRPC statuses and back.
//
// A failed reply travels as a status whose code comes from an apis.Mapper,
// whose message is the reply text, and which carries one
// google.rpc.ErrorInfo detail:
//
//	reason:   RUNTIME_ROUTE_NOT_FOUND
//	domain:   birdreply.dirpx.dev
//	metadata: {code: "8001", kind: "RouteNotFound", band: "runtime_error"}
//
// A reason that differs from the kind's own reason is also sent under
// MetaReason in its dotted form.
package grpcx

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/birdreply"
	"dirpx.dev/birdreply/adapter"
	"dirpx.dev/birdreply/apis"
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/reason"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of reply errors.
const Domain = "birdreply.dirpx.dev"

// Metadata keys of the ErrorInfo detail. Error details are added under
// DetailPrefix followed by the detail key.
const (
	MetaCode     = "code"
	MetaKind     = "kind"
	MetaBand     = "band"
	MetaReason   = "reason"
	DetailPrefix = "detail."
)

// InfoReason renders a reply reason as an ErrorInfo reason, e.g.
// "runtime.route_not_found" becomes "RUNTIME_ROUTE_NOT_FOUND".
func InfoReason(r reason.Reason) string {
	return strings.ToUpper(strings.ReplaceAll(string(r), ".", "_"))
}

// Status builds the gRPC status of e. A reply that m maps to codes.OK is
// still an error here, so it is sent as codes.Unknown instead. A nil e
// yields a bare codes.Unknown status.
func Status(m apis.Mapper, e *birdreply.Error) *gstatus.Status {
	if e == nil {
		return gstatus.New(gcodes.Unknown, "")
	}
	c := m.GRPCStatus(e.Code, e.Reason)
	if c == gcodes.OK {
		c = gcodes.Unknown
	}
	base := gstatus.New(c, e.Text)

	msg := e.Reply()
	info := &errdetails.ErrorInfo{
		Reason: InfoReason(e.Reason),
		Domain: Domain,
		Metadata: map[string]string{
			MetaCode: e.Code.String(),
			MetaKind: msg.Kind().String(),
			MetaBand: msg.Band().String(),
		},
	}
	if e.Reason != msg.Reason() {
		info.Metadata[MetaReason] = string(e.Reason)
	}
	for k, v := range e.Details {
		info.Metadata[DetailPrefix+k] = fmt.Sprint(v)
	}

	with, err := base.WithDetails(info)
	if err != nil {
		return base
	}
	return with
}

// FromError restores the reply carried by a status built with Status.
// Errors that are not gRPC statuses, or that lack a reply ErrorInfo from
// Domain, report false.
func FromError(err error) (birdreply.Message, bool) {
	msg, _, ok := fromError(err)
	return msg, ok
}

// ErrorFromStatus is FromError for the whole error: details come back as
// strings, a reason sent under MetaReason replaces the kind's reason, and
// err becomes the cause.
func ErrorFromStatus(err error) (*birdreply.Error, bool) {
	msg, info, ok := fromError(err)
	if !ok {
		return nil, false
	}
	e := birdreply.E(msg, birdreply.WithCauseOption(err))
	if v, ok := info.GetMetadata()[MetaReason]; ok {
		if r, err := reason.Parse(v); err == nil {
			e.Reason = r
		}
	}
	for k, v := range info.GetMetadata() {
		if key, ok := strings.CutPrefix(k, DetailPrefix); ok && key != "" {
			e = e.WithDetail(key, v)
		}
	}
	return e, true
}

func fromError(err error) (birdreply.Message, *errdetails.ErrorInfo, bool) {
	if err == nil {
		return birdreply.Message{}, nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return birdreply.Message{}, nil, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		// Codes above code.Max never appear on the wire but still travel here.
		c, err := strconv.ParseUint(info.GetMetadata()[MetaCode], 10, 32)
		if err != nil {
			return birdreply.Message{}, nil, false
		}
		return birdreply.Decode(code.Code(c), st.Message()), info, true
	}
	return birdreply.Message{}, nil, false
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// handler errors carrying a reply (see adapter.FromError) into statuses
// built by Status.
// Other errors are returned as-is. Converted errors are logged at warn
// level; a nil logger disables logging.
func UnaryServerInterceptor(m apis.Mapper, logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		be, ok := adapter.FromError(err)
		if !ok {
			return nil, err
		}
		st := Status(m, be)
		logger.Warn("bird reply error",
			zap.String("method", info.FullMethod),
			adapter.DescriptorField(adapter.ToDescriptor(be, apis.Status{
				HTTP: m.HTTPStatus(be.Code, be.Reason),
				GRPC: st.Code(),
			})),
		)
		return nil, st.Err()
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// reply statuses back into *birdreply.Error values using ErrorFromStatus.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if e, ok := ErrorFromStatus(err); ok {
			return e
		}
		return err
	}
}
