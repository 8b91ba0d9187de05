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

package mapper

import (
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/ahparhizgar/api-call-error/kind"
)

// defaultHTTP is the HTTP status used for a kind when the error carries no
// status of its own and nothing more specific is configured. Errors caused
// by the upstream call itself (unreachable or unreadable) surface as a bad
// gateway.
var defaultHTTP = map[kind.Kind]int{
	kind.Network:     http.StatusBadGateway,
	kind.InvalidData: http.StatusBadGateway,
	kind.Server:      http.StatusBadGateway,

	kind.BadRequest:       http.StatusBadRequest,
	kind.Unauthorized:     http.StatusUnauthorized,
	kind.Forbidden:        http.StatusForbidden,
	kind.NotFound:         http.StatusNotFound,
	kind.RateLimitReached: http.StatusTooManyRequests,
	kind.OtherClient:      http.StatusBadRequest,
}

// defaultGRPC is the gRPC code used for a kind when the error's HTTP status
// has no entry in statusGRPC.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.Network:     codes.Unavailable,
	kind.InvalidData: codes.Internal,
	kind.Server:      codes.Internal,

	kind.BadRequest:       codes.InvalidArgument,
	kind.Unauthorized:     codes.Unauthenticated,
	kind.Forbidden:        codes.PermissionDenied,
	kind.NotFound:         codes.NotFound,
	kind.RateLimitReached: codes.ResourceExhausted,
	kind.OtherClient:      codes.FailedPrecondition,
}

// statusGRPC translates the HTTP status carried by an error into the closest
// canonical gRPC code.
var statusGRPC = map[int]codes.Code{
	http.StatusBadRequest:          codes.InvalidArgument,
	http.StatusUnauthorized:        codes.Unauthenticated,
	http.StatusForbidden:           codes.PermissionDenied,
	http.StatusNotFound:            codes.NotFound,
	http.StatusRequestTimeout:      codes.DeadlineExceeded,
	http.StatusConflict:            codes.Aborted,
	http.StatusGone:                codes.NotFound,
	http.StatusPreconditionFailed:  codes.FailedPrecondition,
	http.StatusUnprocessableEntity: codes.InvalidArgument,
	http.StatusTooManyRequests:     codes.ResourceExhausted,
	499:                            codes.Canceled,

	http.StatusInternalServerError: codes.Internal,
	http.StatusNotImplemented:      codes.Unimplemented,
	http.StatusBadGateway:          codes.Unavailable,
	http.StatusServiceUnavailable:  codes.Unavailable,
	http.StatusGatewayTimeout:      codes.DeadlineExceeded,
}
