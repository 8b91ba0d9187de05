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

package kind

// Transport-level kinds.
//
// These describe failures where no usable HTTP status was involved.
const (
	// Network indicates that the transport failed before a response with a
	// status code was obtained: connection refused, DNS failure, TLS
	// handshake failure, timeout, or a broken socket.
	// The underlying failure is always attached as the error cause.
	Network Kind = "network"

	// InvalidData indicates that a response was obtained but its body could
	// not be turned into the value the caller asked for: malformed payload,
	// schema violation, or no deserializer for the expected type.
	// The cause is attached when a deserializer actually failed and is absent
	// when the mismatch was detected after the fact.
	InvalidData Kind = "invalid_data"
)

// HTTP status kinds.
const (
	// Server covers every 5xx status. The concrete code is carried by the
	// error itself.
	Server Kind = "server"

	// BadRequest is HTTP 400.
	BadRequest Kind = "bad_request"

	// Unauthorized is HTTP 401.
	Unauthorized Kind = "unauthorized"

	// Forbidden is HTTP 403.
	Forbidden Kind = "forbidden"

	// NotFound is HTTP 404.
	NotFound Kind = "not_found"

	// RateLimitReached is HTTP 429.
	RateLimitReached Kind = "rate_limit_reached"

	// OtherClient is any 4xx status without a dedicated kind. The concrete
	// code is carried by the error itself.
	OtherClient Kind = "other_client"
)

var all = []Kind{
	Network,
	InvalidData,
	Server,
	BadRequest,
	Unauthorized,
	Forbidden,
	NotFound,
	RateLimitReached,
	OtherClient,
}

// All returns every kind of the taxonomy in a stable order.
// The returned slice is a fresh copy.
func All() []Kind {
	out := make([]Kind, len(all))
	copy(out, all)
	return out
}

// Known reports whether k is a member of the taxonomy.
func Known(k Kind) bool {
	for _, v := range all {
		if v == k {
			return true
		}
	}
	return false
}

// IsClient reports whether k is one of the 4xx kinds.
func (k Kind) IsClient() bool {
	switch k {
	case BadRequest, Unauthorized, Forbidden, NotFound, RateLimitReached, OtherClient:
		return true
	}
	return false
}

// IsHTTP reports whether errors of kind k carry an HTTP status code.
func (k Kind) IsHTTP() bool {
	return k == Server || k.IsClient()
}
