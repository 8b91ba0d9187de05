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

package apicallerror

// ClientErrorExtras is the extra context a payload extractor pulls out of an
// error response before the error is constructed.
//
// All fields are optional. For 5xx responses only Payload is used.
type ClientErrorExtras struct {
	// UserMessage is a message meant for end users.
	UserMessage string

	// ErrorKey identifies the error type returned by the server.
	ErrorKey string

	// Payload is arbitrary structured data, opaque to this package.
	Payload any
}

// PayloadOption returns an option carrying only the payload of x, as used
// for server errors. A nil x yields a no-op option.
func (x *ClientErrorExtras) PayloadOption() Option {
	if x == nil {
		return func(*fields) {}
	}
	return WithPayload(x.Payload)
}
