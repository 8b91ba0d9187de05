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

package apicallerror

import (
	"errors"
	"fmt"

	"github.com/ahparhizgar/api-call-error/apis"
	"github.com/ahparhizgar/api-call-error/kind"
	"github.com/ahparhizgar/api-call-error/status"
)

// Error is the capability set shared by every API call error.
type Error = apis.Error

// HTTPError is an Error produced from an HTTP response status.
type HTTPError = apis.HTTPError

// ClientError is an HTTPError for a 4xx response.
type ClientError = apis.ClientError

// Compile-time interface compliance checks.
var (
	_ Error       = (*InvalidDataError)(nil)
	_ Error       = (*NetworkError)(nil)
	_ HTTPError   = (*ServerError)(nil)
	_ ClientError = (*BadRequest)(nil)
	_ ClientError = (*Unauthorized)(nil)
	_ ClientError = (*Forbidden)(nil)
	_ ClientError = (*NotFound)(nil)
	_ ClientError = (*RateLimitReached)(nil)
	_ ClientError = (*OtherClientError)(nil)
)

// base holds the fields every taxonomy member carries.
//
// Fields are unexported: errors are immutable once constructed and may be
// shared between goroutines.
type base struct {
	message string
	cause   error
	payload any
}

func newBase(msg string, opts []Option) (base, fields) {
	f := fields{}
	for _, opt := range opts {
		opt(&f)
	}
	return base{message: msg, cause: f.cause, payload: f.payload}, f
}

// Message returns the human-oriented description.
func (b *base) Message() string { return b.message }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (b *base) Unwrap() error { return b.cause }

// Payload returns the attached custom payload, or nil.
func (b *base) Payload() any { return b.payload }

// format renders "<kind>: <message>" or "<kind> (<code>): <message>".
// The cause is appended after the message so that logs keep the root
// failure visible.
func (b *base) format(k kind.Kind, code int) string {
	head := string(k)
	if code != 0 {
		head = fmt.Sprintf("%s (%d)", k, code)
	}
	switch {
	case b.message == "" && b.cause == nil:
		return head
	case b.cause == nil:
		return head + ": " + b.message
	case b.message == "":
		return head + ": " + b.cause.Error()
	}
	return head + ": " + b.message + ": " + b.cause.Error()
}

// InvalidDataError reports a response whose body could not be turned into
// the expected value.
type InvalidDataError struct{ base }

// NewInvalidDataError returns a new InvalidDataError.
func NewInvalidDataError(msg string, opts ...Option) *InvalidDataError {
	b, _ := newBase(msg, opts)
	return &InvalidDataError{base: b}
}

// Kind returns kind.InvalidData.
func (*InvalidDataError) Kind() kind.Kind { return kind.InvalidData }

func (e *InvalidDataError) Error() string { return e.format(kind.InvalidData, 0) }

// NetworkError reports a transport failure that happened before a response
// was obtained.
type NetworkError struct{ base }

// NewNetworkError returns a new NetworkError.
func NewNetworkError(msg string, opts ...Option) *NetworkError {
	b, _ := newBase(msg, opts)
	return &NetworkError{base: b}
}

// Kind returns kind.Network.
func (*NetworkError) Kind() kind.Kind { return kind.Network }

func (e *NetworkError) Error() string { return e.format(kind.Network, 0) }

// ServerError reports a 5xx response.
type ServerError struct {
	base
	code int
}

// NewServerError returns a new ServerError.
//
// It panics if code is outside 500..599: that is a programming error.
// User message and key options are ignored; only the payload of server
// errors is taken from extras.
func NewServerError(code int, msg string, opts ...Option) *ServerError {
	if !status.IsServerError(code) {
		panic(fmt.Sprintf("apicallerror: ServerError requires a 5xx code, got %d", code))
	}
	b, _ := newBase(msg, opts)
	return &ServerError{base: b, code: code}
}

// Kind returns kind.Server.
func (*ServerError) Kind() kind.Kind { return kind.Server }

// Code returns the HTTP status code.
func (e *ServerError) Code() int { return e.code }

func (e *ServerError) Error() string { return e.format(kind.Server, e.code) }

// clientBase holds the fields shared by the 4xx variants.
type clientBase struct {
	base
	userMessage string
	key         string
}

func newClientBase(msg string, opts []Option) clientBase {
	b, f := newBase(msg, opts)
	return clientBase{base: b, userMessage: f.userMessage, key: f.key}
}

// UserMessage returns the server-provided user-facing message, or "".
func (c *clientBase) UserMessage() string { return c.userMessage }

// Key returns the server-provided error key, or "".
func (c *clientBase) Key() string { return c.key }

// BadRequest reports a 400 response.
type BadRequest struct{ clientBase }

// NewBadRequest returns a new BadRequest.
func NewBadRequest(msg string, opts ...Option) *BadRequest {
	return &BadRequest{clientBase: newClientBase(msg, opts)}
}

// Kind returns kind.BadRequest.
func (*BadRequest) Kind() kind.Kind { return kind.BadRequest }

// Code returns 400.
func (*BadRequest) Code() int { return status.BadRequest }

func (e *BadRequest) Error() string { return e.format(kind.BadRequest, status.BadRequest) }

// Unauthorized reports a 401 response.
type Unauthorized struct{ clientBase }

// NewUnauthorized returns a new Unauthorized.
func NewUnauthorized(msg string, opts ...Option) *Unauthorized {
	return &Unauthorized{clientBase: newClientBase(msg, opts)}
}

// Kind returns kind.Unauthorized.
func (*Unauthorized) Kind() kind.Kind { return kind.Unauthorized }

// Code returns 401.
func (*Unauthorized) Code() int { return status.Unauthorized }

func (e *Unauthorized) Error() string { return e.format(kind.Unauthorized, status.Unauthorized) }

// Forbidden reports a 403 response.
type Forbidden struct{ clientBase }

// NewForbidden returns a new Forbidden.
func NewForbidden(msg string, opts ...Option) *Forbidden {
	return &Forbidden{clientBase: newClientBase(msg, opts)}
}

// Kind returns kind.Forbidden.
func (*Forbidden) Kind() kind.Kind { return kind.Forbidden }

// Code returns 403.
func (*Forbidden) Code() int { return status.Forbidden }

func (e *Forbidden) Error() string { return e.format(kind.Forbidden, status.Forbidden) }

// NotFound reports a 404 response.
type NotFound struct{ clientBase }

// NewNotFound returns a new NotFound.
func NewNotFound(msg string, opts ...Option) *NotFound {
	return &NotFound{clientBase: newClientBase(msg, opts)}
}

// Kind returns kind.NotFound.
func (*NotFound) Kind() kind.Kind { return kind.NotFound }

// Code returns 404.
func (*NotFound) Code() int { return status.NotFound }

func (e *NotFound) Error() string { return e.format(kind.NotFound, status.NotFound) }

// RateLimitReached reports a 429 response.
type RateLimitReached struct{ clientBase }

// NewRateLimitReached returns a new RateLimitReached.
func NewRateLimitReached(msg string, opts ...Option) *RateLimitReached {
	return &RateLimitReached{clientBase: newClientBase(msg, opts)}
}

// Kind returns kind.RateLimitReached.
func (*RateLimitReached) Kind() kind.Kind { return kind.RateLimitReached }

// Code returns 429.
func (*RateLimitReached) Code() int { return status.TooManyRequests }

func (e *RateLimitReached) Error() string {
	return e.format(kind.RateLimitReached, status.TooManyRequests)
}

// OtherClientError reports a 4xx response without a dedicated variant.
type OtherClientError struct {
	clientBase
	code int
}

// NewOtherClientError returns a new OtherClientError.
//
// It panics if code is one of the reserved codes (400, 401, 403, 404, 429)
// or is not a 4xx code. Use NewClientError to pick the variant from a code.
func NewOtherClientError(code int, msg string, opts ...Option) *OtherClientError {
	if status.IsReserved(code) {
		panic(fmt.Sprintf("apicallerror: use the specific ClientError variant for code %d", code))
	}
	if !status.IsClientError(code) {
		panic(fmt.Sprintf("apicallerror: ClientError requires a 4xx code, got %d", code))
	}
	return &OtherClientError{clientBase: newClientBase(msg, opts), code: code}
}

// Kind returns kind.OtherClient.
func (*OtherClientError) Kind() kind.Kind { return kind.OtherClient }

// Code returns the HTTP status code.
func (e *OtherClientError) Code() int { return e.code }

func (e *OtherClientError) Error() string { return e.format(kind.OtherClient, e.code) }

// NewClientError returns the ClientError variant for code, as chosen by
// status.Classify. It panics if code is not a 4xx code.
func NewClientError(code int, msg string, opts ...Option) ClientError {
	k, ok := status.Classify(code)
	if !ok || !k.IsClient() {
		panic(fmt.Sprintf("apicallerror: ClientError requires a 4xx code, got %d", code))
	}
	switch k {
	case kind.BadRequest:
		return NewBadRequest(msg, opts...)
	case kind.Unauthorized:
		return NewUnauthorized(msg, opts...)
	case kind.Forbidden:
		return NewForbidden(msg, opts...)
	case kind.NotFound:
		return NewNotFound(msg, opts...)
	case kind.RateLimitReached:
		return NewRateLimitReached(msg, opts...)
	}
	return NewOtherClientError(code, msg, opts...)
}

// NewHTTPError returns the HTTPError for any 4xx or 5xx code. The second
// result is false, and the error nil, for any other code.
func NewHTTPError(code int, msg string, opts ...Option) (HTTPError, bool) {
	switch {
	case status.IsClientError(code):
		return NewClientError(code, msg, opts...), true
	case status.IsServerError(code):
		return NewServerError(code, msg, opts...), true
	}
	return nil, false
}

// KindOf returns the kind of the first API call error in err's chain.
func KindOf(err error) (kind.Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return kind.Empty, false
}

// IsKind reports whether err's chain contains an API call error of kind k.
func IsKind(err error, k kind.Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// AsClientError returns the first ClientError in err's chain.
func AsClientError(err error) (ClientError, bool) {
	var ce ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsHTTPError returns the first HTTPError in err's chain.
func AsHTTPError(err error) (HTTPError, bool) {
	var he HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
