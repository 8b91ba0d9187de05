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

// Package apicallerror normalizes the failures of HTTP API calls into a small
// error taxonomy.
//
// Every failure observed around an API call is one of:
//
//   - NetworkError: the transport failed before a response was obtained;
//   - InvalidDataError: the response body could not become the expected value;
//   - ServerError: the response status was 5xx;
//   - a ClientError for a 4xx status: BadRequest (400), Unauthorized (401),
//     Forbidden (403), NotFound (404), RateLimitReached (429) or
//     OtherClientError for any other 4xx code.
//
// Each error carries a message, an optional cause and an optional payload.
// HTTP errors add the status code and client errors add the server-provided
// user message and key.
//
// The errors are produced by the interception policy in package httpx (or its
// resty integration in package restyx). Callers match on them with errors.As
// or with the kind helpers:
//
//	var nf *apicallerror.NotFound
//	if errors.As(err, &nf) {
//	    // ...
//	}
//
//	if ce, ok := apicallerror.AsClientError(err); ok && ce.Key() == "INVALID_REQUEST" {
//	    // ...
//	}
package apicallerror
