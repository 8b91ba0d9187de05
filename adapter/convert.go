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

package adapter

import (
	"go.uber.org/zap/zapcore"

	"github.com/ahparhizgar/api-call-error/apis"
)

// Descriptor is an apis.Descriptor that can be logged with zap.Object.
type Descriptor struct {
	apis.Descriptor
}

// MarshalLogObject implements zapcore.ObjectMarshaler. Empty fields are
// omitted.
func (d Descriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("kind", d.Kind)
	if d.Message != "" {
		enc.AddString("message", d.Message)
	}
	if d.HTTPStatus != 0 {
		enc.AddInt("http_status", d.HTTPStatus)
	}
	if d.Key != "" {
		enc.AddString("key", d.Key)
	}
	if d.UserMessage != "" {
		enc.AddString("user_message", d.UserMessage)
	}
	if d.Cause != "" {
		enc.AddString("cause", d.Cause)
	}
	if d.HasPayload {
		enc.AddBool("has_payload", true)
	}
	return nil
}

// ToDescriptor flattens an API call error into a Descriptor.
//
// The descriptor is meant for structured logging and tracing. The payload is
// never copied, only its presence is recorded.
func ToDescriptor(e apis.Error) Descriptor {
	if e == nil {
		return Descriptor{}
	}
	d := apis.Descriptor{
		Kind:       string(e.Kind()),
		Message:    e.Message(),
		HasPayload: e.Payload() != nil,
	}
	if cause := e.Unwrap(); cause != nil {
		d.Cause = cause.Error()
	}
	if he, ok := e.(apis.HTTPError); ok {
		d.HTTPStatus = he.Code()
	}
	if ce, ok := e.(apis.ClientError); ok {
		d.Key = ce.Key()
		d.UserMessage = ce.UserMessage()
	}
	return Descriptor{Descriptor: d}
}

// ToView converts an API call error into the public JSON envelope.
//
// No redaction is performed: the view exposes exactly what the error carries,
// minus its cause chain. Filtering sensitive payloads is up to the caller.
func ToView(e apis.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Kind:    string(e.Kind()),
		Message: e.Message(),
		Payload: e.Payload(),
	}
	if ce, ok := e.(apis.ClientError); ok {
		v.Key = ce.Key()
		v.UserMessage = ce.UserMessage()
	}
	return v
}
