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
	"encoding/json"
	"net/http"
	"strconv"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/adapter"
	"github.com/ahparhizgar/api-call-error/apis"
	"github.com/ahparhizgar/api-call-error/mapper"
)

// Meta carries extra context that the HTTP layer can add on top of an error.
type Meta struct {
	RetryAfterSeconds int
}

// Writer turns an API call error into an HTTP response, using Mapper to
// pick the status. A nil Mapper means mapper.Default().
//
// The body is the apis.ErrorView envelope, which JSONEnvelopeExtractor with
// DefaultEnvelopeFields reads back on the client side.
type Writer struct {
	Mapper apis.Mapper
}

// Write writes err. No redaction is performed: the key, user message and
// payload are exposed as-is, the cause chain is never written.
func (w Writer) Write(rw http.ResponseWriter, err apicallerror.Error, meta Meta) {
	if err == nil {
		return
	}
	m := w.Mapper
	if m == nil {
		m = mapper.Default()
	}

	b, mErr := json.Marshal(adapter.ToView(err))
	if mErr != nil {
		// Unserializable payload: fall back to the envelope without it.
		v := adapter.ToView(err)
		v.Payload = nil
		b, _ = json.Marshal(v)
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(m.HTTPStatus(err))
	_, _ = rw.Write(b)
}
