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

package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apicallerror "github.com/ahparhizgar/api-call-error"
)

// PayloadExtractor pulls extra error context out of a 4xx or 5xx response.
//
// It is called at most once per error response, synchronously, before the
// error is constructed. The response body is a buffered copy that the
// extractor may consume; the extractor cannot change the outcome of the
// call. Returning nil extras or an error leaves the error without extras.
// For 5xx responses only the payload is used.
type PayloadExtractor func(resp *http.Response) (*apicallerror.ClientErrorExtras, error)

// NoPayload is the default extractor. It extracts nothing.
func NoPayload(*http.Response) (*apicallerror.ClientErrorExtras, error) {
	return nil, nil
}

// EnvelopeFields names the members of a JSON error envelope. An empty name
// disables that member.
type EnvelopeFields struct {
	Key         string
	UserMessage string
	Payload     string
}

// DefaultEnvelopeFields matches the envelope written by Writer.
func DefaultEnvelopeFields() EnvelopeFields {
	return EnvelopeFields{
		Key:         "key",
		UserMessage: "user_message",
		Payload:     "payload",
	}
}

// JSONEnvelopeExtractor returns an extractor for JSON error bodies of the
// form
//
//	{"key": "INVALID_REQUEST", "user_message": "...", "payload": {...}}
//
// Key and user message must be JSON strings; the payload may be any JSON
// value and is decoded into the usual encoding/json shapes
// (map[string]any, []any, string, float64, bool). Empty bodies yield no
// extras and bodies that are not a JSON object yield an error.
func JSONEnvelopeExtractor(f EnvelopeFields) PayloadExtractor {
	return func(resp *http.Response) (*apicallerror.ClientErrorExtras, error) {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read error body: %w", err)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, nil
		}

		var doc map[string]json.RawMessage
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, fmt.Errorf("decode error envelope: %w", err)
		}

		x := &apicallerror.ClientErrorExtras{}
		found := false
		if raw, ok := member(doc, f.Key); ok {
			if err := json.Unmarshal(raw, &x.ErrorKey); err != nil {
				return nil, fmt.Errorf("decode %q: %w", f.Key, err)
			}
			found = true
		}
		if raw, ok := member(doc, f.UserMessage); ok {
			if err := json.Unmarshal(raw, &x.UserMessage); err != nil {
				return nil, fmt.Errorf("decode %q: %w", f.UserMessage, err)
			}
			found = true
		}
		if raw, ok := member(doc, f.Payload); ok {
			if err := json.Unmarshal(raw, &x.Payload); err != nil {
				return nil, fmt.Errorf("decode %q: %w", f.Payload, err)
			}
			found = true
		}
		if !found {
			return nil, nil
		}
		return x, nil
	}
}

// member returns doc[name] unless name is empty or the value is JSON null.
func member(doc map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if name == "" {
		return nil, false
	}
	raw, ok := doc[name]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return nil, false
	}
	return raw, true
}
