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

// ErrorView is the JSON error envelope exchanged over HTTP.
//
// Servers that relay API call errors write it (see httpx.Writer) and clients
// read it back with an envelope extractor. It only contains what is safe to
// disclose: the cause chain is never part of the view.
type ErrorView struct {
	// Kind is the canonical error kind, e.g. "not_found".
	Kind string `json:"kind"`

	// Message is the human-friendly message of the error.
	Message string `json:"message,omitempty"`

	// Key is the machine-readable error key.
	Key string `json:"key,omitempty"`

	// UserMessage is the message meant for end users.
	UserMessage string `json:"user_message,omitempty"`

	// Payload carries arbitrary structured data. It must survive a JSON
	// round-trip.
	Payload any `json:"payload,omitempty"`
}
