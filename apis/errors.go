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

import "github.com/ahparhizgar/api-call-error/kind"

// Error is the capability set shared by every member of the API call error
// taxonomy.
//
// Callers should match on these interfaces (or on kind.Kind) rather than on
// transport- or serialization-library failure types.
type Error interface {
	error

	// Kind returns the taxonomy member this error belongs to. Never empty.
	Kind() kind.Kind

	// Message returns the human-oriented description, without the kind
	// prefix that Error() adds.
	Message() string

	// Unwrap returns the lower-level failure that triggered this error, if
	// any. It is nil when the error was synthesized by the library itself.
	Unwrap() error

	// Payload returns custom data attached to the error. It is nil unless a
	// payload extractor or the caller supplied one.
	Payload() any
}

// HTTPError is an Error produced from an HTTP response status.
type HTTPError interface {
	Error

	// Code returns the HTTP status code of the error response.
	Code() int
}

// ClientError is an HTTPError for a 4xx response.
//
// UserMessage and Key are server-provided and come from the payload
// extractor. Both are empty when the server did not provide them or the
// response was not parsed.
type ClientError interface {
	HTTPError

	// UserMessage returns a message meant to be shown to end users.
	UserMessage() string

	// Key returns the server-provided key identifying the error, suitable for
	// localization or specific error handling.
	Key() string
}
