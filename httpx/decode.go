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
	"fmt"
	"io"
	"net/http"
	"reflect"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/codec"
)

var defaultRegistry = codec.NewRegistry()

// Decode reads and closes resp.Body and converts it into a T using the
// decoder registered for the response Content-Type. A nil reg means the
// default registry, which only knows JSON.
//
// A failure to read the body is a NetworkError. Any decoding failure is an
// InvalidDataError, see DecodeBytes.
func Decode[T any](resp *http.Response, reg *codec.Registry) (T, error) {
	var zero T
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apicallerror.NewNetworkError(MsgNetworkFailure, apicallerror.WithCause(err))
	}
	return DecodeBytes[T](resp.Header.Get("Content-Type"), body, reg)
}

// DecodeBytes converts body into a T.
//
// When the registered decoder fails the result is an InvalidDataError with
// the decoder error as cause. When the decoder, or the raw-bytes passthrough
// used for unknown media types, yields a value that is not a T the result is
// an InvalidDataError without cause.
func DecodeBytes[T any](contentType string, body []byte, reg *codec.Registry) (T, error) {
	var zero T
	if reg == nil {
		reg = defaultRegistry
	}
	typ := reflect.TypeOf((*T)(nil)).Elem()

	v, err := reg.Decode(contentType, body, typ)
	if err != nil {
		return zero, apicallerror.NewInvalidDataError(MsgConvertFailure, apicallerror.WithCause(err))
	}
	if v == nil && typ.Kind() == reflect.Interface {
		// JSON null into an interface type.
		return zero, nil
	}
	out, ok := v.(T)
	if !ok {
		return zero, apicallerror.NewInvalidDataError(fmt.Sprintf("no suitable deserializer found for type %s", typ))
	}
	return out, nil
}
