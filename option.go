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

// fields collects option values before an error is constructed.
type fields struct {
	cause       error
	payload     any
	userMessage string
	key         string
}

// Option is a functional option for constructing an API call error.
//
// Options that do not apply to the constructed variant are ignored: a user
// message or key passed to NewServerError or NewNetworkError is dropped.
type Option func(*fields)

// WithCause attaches the lower-level failure. A nil err is a no-op.
func WithCause(err error) Option {
	return func(f *fields) {
		if err != nil {
			f.cause = err
		}
	}
}

// WithPayload attaches custom data to the error.
func WithPayload(payload any) Option {
	return func(f *fields) {
		f.payload = payload
	}
}

// WithUserMessage sets the server-provided user-facing message of a client
// error.
func WithUserMessage(msg string) Option {
	return func(f *fields) {
		f.userMessage = msg
	}
}

// WithKey sets the server-provided key of a client error.
func WithKey(key string) Option {
	return func(f *fields) {
		f.key = key
	}
}

// WithExtras applies the user message, key and payload produced by a payload
// extractor. A nil x is a no-op.
func WithExtras(x *ClientErrorExtras) Option {
	return func(f *fields) {
		if x == nil {
			return
		}
		f.userMessage = x.UserMessage
		f.key = x.ErrorKey
		f.payload = x.Payload
	}
}
