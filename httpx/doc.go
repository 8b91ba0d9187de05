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

// Package httpx applies the API call error policy to net/http.
//
// The policy has three independent guard stages:
//
//   - Stage A (send guard): a failure of the underlying RoundTripper becomes
//     an apicallerror.NetworkError carrying the failure as its cause;
//   - Stage B (status guard): a 4xx response becomes the matching
//     apicallerror.ClientError and a 5xx response becomes an
//     apicallerror.ServerError, optionally enriched by a PayloadExtractor;
//     every other status passes through untouched;
//   - Stage C (deserialization guard): turning a body into the expected value
//     either succeeds or fails with an apicallerror.InvalidDataError.
//
// Stages A and B live in Transport, an http.RoundTripper decorator, so they
// compose with any http.Client:
//
//	client := &http.Client{
//	    Transport: httpx.NewTransport(http.DefaultTransport,
//	        httpx.WithPayloadExtractor(httpx.JSONEnvelopeExtractor(httpx.DefaultEnvelopeFields())),
//	    ),
//	}
//
// Stage C is Decode / DecodeBytes. Client bundles both phases:
//
//	c := httpx.NewClient()
//	u, err := httpx.Get[User](ctx, c, "https://api.example.com/users/1")
//
// The policy never retries and imposes no timeouts of its own: both belong
// to the host transport.
package httpx
