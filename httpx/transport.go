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
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/adapter"
	"github.com/ahparhizgar/api-call-error/status"
)

// Messages of the errors produced by the policy.
const (
	MsgNetworkFailure = "a network failure occurred"
	MsgConvertFailure = "failed to convert response body"
)

// Transport is an http.RoundTripper that applies the send and status guards
// to every request. It is safe for concurrent use.
type Transport struct {
	base http.RoundTripper
	cfg  config
}

var _ http.RoundTripper = (*Transport)(nil)

// NewTransport wraps base. A nil base means http.DefaultTransport.
func NewTransport(base http.RoundTripper, opts ...Option) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, cfg: newConfig(opts)}
}

// Base returns the wrapped RoundTripper.
func (t *Transport) Base() http.RoundTripper { return t.base }

// RoundTrip implements http.RoundTripper.
//
// Responses outside 400..599 are returned unchanged. Every other outcome is
// an error of the apicallerror taxonomy and a nil response.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return nil, t.sendFailure(req, err)
	}
	if !status.IsError(resp.StatusCode) {
		return resp, nil
	}
	return nil, t.statusFailure(req, resp)
}

// sendFailure converts a failure that happened before any response was
// received. Errors that already belong to the taxonomy, e.g. from a nested
// Transport, are kept as they are.
func (t *Transport) sendFailure(req *http.Request, err error) error {
	var apiErr apicallerror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	netErr := apicallerror.NewNetworkError(MsgNetworkFailure, apicallerror.WithCause(err))
	t.observe(req, netErr, Classify(err))
	return netErr
}

// statusFailure converts a 4xx or 5xx response and closes its body.
func (t *Transport) statusFailure(req *http.Request, resp *http.Response) error {
	body := resp.Body
	defer body.Close()

	buf, err := io.ReadAll(io.LimitReader(body, t.cfg.maxErrorBody))
	if err != nil {
		t.cfg.logger.Debug("reading error response body failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err),
		)
	}
	resp.Body = io.NopCloser(bytes.NewReader(buf))

	extras := t.extract(req, resp)
	code := resp.StatusCode

	var apiErr apicallerror.Error
	if status.IsClientError(code) {
		apiErr = apicallerror.NewClientError(code, fmt.Sprintf("client error (%d)", code),
			apicallerror.WithExtras(extras))
	} else {
		apiErr = apicallerror.NewServerError(code, fmt.Sprintf("server error (%d)", code),
			extras.PayloadOption())
	}
	t.observe(req, apiErr, "")
	return apiErr
}

// extract runs the payload extractor. Its failures never escape.
func (t *Transport) extract(req *http.Request, resp *http.Response) *apicallerror.ClientErrorExtras {
	extras, err := t.cfg.extractor(resp)
	if err != nil {
		t.cfg.logger.Warn("payload extractor failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return nil
	}
	return extras
}

func (t *Transport) observe(req *http.Request, err apicallerror.Error, class string) {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Object("error", adapter.ToDescriptor(err)),
	}
	if class != "" {
		fields = append(fields, zap.String("class", class))
	}
	t.cfg.logger.Debug("api call failed", fields...)
	t.cfg.metrics.observe(err, class)
	recordSpan(req.Context(), err, class)
}
