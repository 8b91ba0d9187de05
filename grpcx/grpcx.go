/*
   Copyright 2025 The api-call-error Authors

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

package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ahparhizgar/api-call-error/apis"
)

// Metadata keys set on errdetails.ErrorInfo.
const (
	MetaKind           = "kind"
	MetaHTTPStatus     = "http_status"
	MetaUpstreamStatus = "upstream_status"
)

// DefaultLocale is the locale of the LocalizedMessage detail.
const DefaultLocale = "en-US"

// MetaFn returns extra ErrorInfo metadata for an error, e.g. a request ID
// taken from ctx. Entries never replace the built-in keys.
type MetaFn func(ctx context.Context, e apis.Error) map[string]string

type config struct {
	locale string
	metaFn MetaFn
}

// Option configures Status and UnaryServerInterceptor.
type Option func(*config)

// WithLocale sets the locale of the user message detail.
func WithLocale(locale string) Option {
	return func(c *config) { c.locale = locale }
}

// WithMetadata adds ErrorInfo metadata computed by fn.
func WithMetadata(fn MetaFn) Option {
	return func(c *config) { c.metaFn = fn }
}

func newConfig(opts []Option) config {
	c := config{locale: DefaultLocale}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Status projects the first API call error in err's chain onto a gRPC
// status. The second result is false when err holds no such error.
//
// The status carries these details:
//   - errdetails.ErrorInfo with the client error key as reason (the upper
//     cased kind otherwise), domain, and kind/status metadata;
//   - errdetails.LocalizedMessage with the user message, when present;
//   - the payload, as structpb.Struct for map[string]any payloads or as
//     itself for proto.Message payloads. Other payloads are dropped.
func Status(ctx context.Context, err error, m apis.Mapper, domain string, opts ...Option) (*gstatus.Status, bool) {
	var e apis.Error
	if !errors.As(err, &e) {
		return nil, false
	}
	cfg := newConfig(opts)
	st := m.Status(e)

	info := &errdetails.ErrorInfo{
		Reason: strings.ToUpper(string(e.Kind())),
		Domain: domain,
		Metadata: map[string]string{
			MetaKind:       string(e.Kind()),
			MetaHTTPStatus: strconv.Itoa(st.HTTP),
		},
	}
	if he, ok := e.(apis.HTTPError); ok {
		info.Metadata[MetaUpstreamStatus] = strconv.Itoa(he.Code())
	}
	if cfg.metaFn != nil {
		for k, v := range cfg.metaFn(ctx, e) {
			if _, taken := info.Metadata[k]; !taken {
				info.Metadata[k] = v
			}
		}
	}

	details := []protoadapt.MessageV1{info}
	if ce, ok := e.(apis.ClientError); ok {
		if ce.Key() != "" {
			info.Reason = ce.Key()
		}
		if ce.UserMessage() != "" {
			details = append(details, &errdetails.LocalizedMessage{
				Locale:  cfg.locale,
				Message: ce.UserMessage(),
			})
		}
	}
	if p := payloadDetail(e.Payload()); p != nil {
		details = append(details, p)
	}

	code := st.GRPC
	if code == codes.OK {
		// An OK status would turn the error into a success.
		code = codes.Unknown
	}
	base := gstatus.New(code, e.Message())
	if with, err := base.WithDetails(details...); err == nil {
		return with, true
	}
	return base, true
}

func payloadDetail(payload any) protoadapt.MessageV1 {
	switch p := payload.(type) {
	case nil:
		return nil
	case proto.Message:
		return protoadapt.MessageV1Of(p)
	case map[string]any:
		s, err := structpb.NewStruct(p)
		if err != nil {
			return nil
		}
		return s
	}
	return nil
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// API call errors returned by handlers into rich gRPC statuses. Other
// errors are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, domain string, opts ...Option) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		st, ok := Status(ctx, err, m, domain, opts...)
		if !ok {
			return nil, err
		}
		return nil, st.Err()
	}
}

// ExtractErrorInfo pulls errdetails.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := fromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractUserMessage returns the LocalizedMessage text of a gRPC error.
func ExtractUserMessage(err error) (string, bool) {
	st, ok := fromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Details() {
		if lm, ok := d.(*errdetails.LocalizedMessage); ok {
			return lm.GetMessage(), true
		}
	}
	return "", false
}

// ExtractPayload returns the payload detail of a gRPC error in its packed
// form. Use anypb.UnmarshalTo or UnmarshalNew to get at the message.
func ExtractPayload(err error) (*anypb.Any, bool) {
	st, ok := fromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Proto().GetDetails() {
		if d.MessageIs(&errdetails.ErrorInfo{}) || d.MessageIs(&errdetails.LocalizedMessage{}) {
			continue
		}
		return d, true
	}
	return nil, false
}

func fromError(err error) (*gstatus.Status, bool) {
	if err == nil {
		return nil, false
	}
	return gstatus.FromError(err)
}
