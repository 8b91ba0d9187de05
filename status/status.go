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

package status

import (
	"net/http"

	"github.com/ahparhizgar/api-call-error/kind"
)

// HTTP error range boundaries. 399 is still a success and 600 and above are
// undefined by this package.
const (
	ClientErrorMin = 400
	ClientErrorMax = 499
	ServerErrorMin = 500
	ServerErrorMax = 599
)

// Reserved client codes. Each has a dedicated kind.
const (
	BadRequest      = http.StatusBadRequest
	Unauthorized    = http.StatusUnauthorized
	Forbidden       = http.StatusForbidden
	NotFound        = http.StatusNotFound
	TooManyRequests = http.StatusTooManyRequests
)

var reserved = map[int]kind.Kind{
	BadRequest:      kind.BadRequest,
	Unauthorized:    kind.Unauthorized,
	Forbidden:       kind.Forbidden,
	NotFound:        kind.NotFound,
	TooManyRequests: kind.RateLimitReached,
}

// Classify returns the kind of the error an HTTP response with the given
// status code represents.
//
// The second result is false for codes outside 400..599; the returned kind
// is then kind.Empty.
func Classify(code int) (kind.Kind, bool) {
	if k, ok := reserved[code]; ok {
		return k, true
	}
	switch {
	case IsClientError(code):
		return kind.OtherClient, true
	case IsServerError(code):
		return kind.Server, true
	}
	return kind.Empty, false
}

// IsReserved reports whether code has a dedicated client error kind.
func IsReserved(code int) bool {
	_, ok := reserved[code]
	return ok
}

// Reserved returns the reserved client codes in ascending order.
func Reserved() []int {
	return []int{BadRequest, Unauthorized, Forbidden, NotFound, TooManyRequests}
}

// IsClientError reports whether code is in 400..499.
func IsClientError(code int) bool {
	return code >= ClientErrorMin && code <= ClientErrorMax
}

// IsServerError reports whether code is in 500..599.
func IsServerError(code int) bool {
	return code >= ServerErrorMin && code <= ServerErrorMax
}

// IsError reports whether code is in 400..599.
func IsError(code int) bool {
	return IsClientError(code) || IsServerError(code)
}
