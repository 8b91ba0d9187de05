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
	"errors"
	"net/http"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/codec"
)

// Client is an http.Client whose transport applies the error policy, bundled
// with the registry used to decode successful responses.
type Client struct {
	http     *http.Client
	registry *codec.Registry
}

type clientConfig struct {
	httpClient *http.Client
	base       http.RoundTripper
	registry   *codec.Registry
	transport  []Option
}

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// WithHTTPClient uses a copy of hc whose transport is wrapped with the
// policy. hc itself is not modified.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithBaseTransport sets the RoundTripper wrapped by the policy. It takes
// precedence over the transport of the client given to WithHTTPClient.
func WithBaseTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) {
		c.base = rt
	}
}

// WithRegistry sets the decoders used by Call and Get.
func WithRegistry(r *codec.Registry) ClientOption {
	return func(c *clientConfig) {
		c.registry = r
	}
}

// WithTransportOptions passes options to the underlying Transport.
func WithTransportOptions(opts ...Option) ClientOption {
	return func(c *clientConfig) {
		c.transport = append(c.transport, opts...)
	}
}

// NewClient builds a Client. Without options it wraps http.DefaultTransport
// and decodes JSON.
func NewClient(opts ...ClientOption) *Client {
	var cfg clientConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	hc := &http.Client{}
	if cfg.httpClient != nil {
		*hc = *cfg.httpClient
	}
	base := hc.Transport
	if cfg.base != nil {
		base = cfg.base
	}
	hc.Transport = NewTransport(base, cfg.transport...)

	reg := cfg.registry
	if reg == nil {
		reg = defaultRegistry
	}
	return &Client{http: hc, registry: reg}
}

// HTTPClient returns the underlying client.
func (c *Client) HTTPClient() *http.Client { return c.http }

// Registry returns the decoders used by Call and Get.
func (c *Client) Registry() *codec.Registry { return c.registry }

// Do sends req. On failure the error is always an apicallerror.Error and the
// response is nil.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Normalize(err)
	}
	return resp, nil
}

// Normalize strips the wrappers, such as *url.Error, that HTTP clients put
// around transport errors. Failures raised by the client itself, such as its
// own timeout or a redirect policy error, become a NetworkError. A nil err
// stays nil.
func Normalize(err error) error {
	if err == nil {
		return nil
	}
	var apiErr apicallerror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apicallerror.NewNetworkError(MsgNetworkFailure, apicallerror.WithCause(err))
}

// Call sends req and decodes a successful response into a T.
func Call[T any](c *Client, req *http.Request) (T, error) {
	resp, err := c.Do(req)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](resp, c.registry)
}

// Get issues a GET to url and decodes the response into a T.
func Get[T any](ctx context.Context, c *Client, url string) (T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return Call[T](c, req)
}
