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

// Package mapper provides deterministic, immutable mappings from API call
// errors to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A service that calls other APIs often relays their failures to its own
// callers. Package mapper decides which status such a relayed error gets. A
// mapper is:
//
//   - immutable: a snapshot that is safe for concurrent reuse;
//   - overridable: callers can change library defaults per kind;
//   - key-aware: callers can pin statuses for server-provided error keys;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the client error key;
//  2. override for the kind;
//  3. the HTTP status carried by the error (for gRPC, its canonical
//     translation when one exists);
//  4. per-kind default (library or user-adjusted);
//  5. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// Network and invalid-data errors default to 502 / Unavailable and
// 502 / Internal: the upstream could not be reached or answered garbage.
// Client errors keep their own status and map to the matching gRPC code.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.Unauthorized, http.StatusBadGateway),
//	    mapper.WithKeyHTTP("USER_DELETED", http.StatusGone),
//	)
//	if err != nil {
//	    // invalid kind, status or key
//	}
//
//	st := m.Status(apiErr)
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier matched.
package mapper
