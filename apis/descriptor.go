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

// Descriptor is a flat, log-friendly description of a single API call error.
//
// It uses plain strings and ints so that it can be emitted by loggers,
// attached to spans or put on a message bus without importing the concrete
// error types.
type Descriptor struct {
	// Kind is the canonical taxonomy kind, e.g. "not_found".
	Kind string `json:"kind"`

	// Message is the library- or caller-provided message.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the status code of the error response. Zero for
	// network and invalid-data errors.
	HTTPStatus int `json:"http_status,omitempty"`

	// Key is the server-provided error key of a client error.
	Key string `json:"key,omitempty"`

	// UserMessage is the server-provided user-facing message of a client
	// error.
	UserMessage string `json:"user_message,omitempty"`

	// Cause is the text of the underlying failure, if any.
	Cause string `json:"cause,omitempty"`

	// HasPayload reports whether a payload is attached. The payload itself is
	// opaque and is never copied into a descriptor.
	HasPayload bool `json:"has_payload,omitempty"`
}
