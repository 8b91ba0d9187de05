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

package apis

import (
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe set of rules resolving an API
// call error into the transport statuses used when the error is exposed
// again, for example by a gateway relaying an upstream failure.
type Mapper interface {
	// HTTPStatus returns the HTTP status for err.
	HTTPStatus(err Error) int

	// GRPCStatus returns the gRPC status code for err.
	GRPCStatus(err Error) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic.
	Status(err Error) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(err Error) string
}

// Status represents a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
