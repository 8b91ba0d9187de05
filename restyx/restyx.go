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

package restyx

import (
	"errors"
	"io"
	"slices"

	"github.com/go-resty/resty/v2"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/codec"
	"github.com/ahparhizgar/api-call-error/httpx"
	"github.com/ahparhizgar/api-call-error/kind"
)

// Install wraps the transport of c with httpx.Transport configured by opts
// and the JSON unmarshaler of c with the deserialization guard. Installing
// twice keeps the first transport. It returns c.
func Install(c *resty.Client, opts ...httpx.Option) *resty.Client {
	base := c.GetClient().Transport
	if _, ok := base.(*httpx.Transport); !ok {
		c.SetTransport(httpx.NewTransport(base, opts...))
	}

	unmarshal := c.JSONUnmarshal
	c.SetJSONUnmarshaler(func(data []byte, v any) error {
		err := unmarshal(data, v)
		if err == nil {
			return nil
		}
		var inv *apicallerror.InvalidDataError
		if errors.As(err, &inv) {
			return inv
		}
		return apicallerror.NewInvalidDataError(httpx.MsgConvertFailure, apicallerror.WithCause(err))
	})
	return c
}

// Normalize maps an error returned by resty onto the taxonomy. See
// httpx.Normalize.
func Normalize(err error) error {
	return httpx.Normalize(err)
}

// Execute sends req and decodes a successful body into a T with reg, which
// may be nil for JSON only. The request must go through a client prepared
// with Install for status errors to be classified.
func Execute[T any](req *resty.Request, method, url string, reg *codec.Registry) (T, error) {
	var zero T

	resp, err := req.SetDoNotParseResponse(true).Execute(method, url)
	if err != nil {
		return zero, Normalize(err)
	}
	body := resp.RawBody()
	if body == nil {
		return httpx.DecodeBytes[T](resp.Header().Get("Content-Type"), nil, reg)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return zero, apicallerror.NewNetworkError(httpx.MsgNetworkFailure, apicallerror.WithCause(err))
	}
	return httpx.DecodeBytes[T](resp.Header().Get("Content-Type"), data, reg)
}

// RetryOn returns a resty retry condition that retries failures of the
// given kinds, e.g. kind.Network and kind.Server. Retrying is left to resty.
func RetryOn(kinds ...kind.Kind) resty.RetryConditionFunc {
	return func(_ *resty.Response, err error) bool {
		k, ok := apicallerror.KindOf(err)
		return ok && slices.Contains(kinds, k)
	}
}
