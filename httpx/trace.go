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
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apicallerror "github.com/ahparhizgar/api-call-error"
)

// Span attribute keys set on classification.
const (
	AttrErrorKind  = attribute.Key("apicall.error.kind")
	AttrErrorClass = attribute.Key("apicall.error.class")
	AttrStatusCode = attribute.Key("http.response.status_code")
)

// recordSpan marks the active span of ctx as failed with err.
func recordSpan(ctx context.Context, err apicallerror.Error, class string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	attrs := []attribute.KeyValue{AttrErrorKind.String(string(err.Kind()))}
	if he, ok := err.(apicallerror.HTTPError); ok {
		attrs = append(attrs, AttrStatusCode.Int(he.Code()))
	}
	if class != "" {
		attrs = append(attrs, AttrErrorClass.String(class))
	}
	span.SetAttributes(attrs...)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message())
}
