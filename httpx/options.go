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
	"go.uber.org/zap"
)

// DefaultMaxErrorBody is the number of bytes of an error response body that
// are buffered for the payload extractor.
const DefaultMaxErrorBody int64 = 1 << 20

// config holds the resolved configuration of a Transport.
type config struct {
	extractor    PayloadExtractor
	logger       *zap.Logger
	metrics      *Metrics
	maxErrorBody int64
}

func newConfig(opts []Option) config {
	cfg := config{
		extractor:    NoPayload,
		logger:       zap.NewNop(),
		maxErrorBody: DefaultMaxErrorBody,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a Transport.
type Option func(*config)

// WithPayloadExtractor registers the hook that pulls extra error context out
// of 4xx and 5xx responses. A nil fn restores the default, which extracts
// nothing.
func WithPayloadExtractor(fn PayloadExtractor) Option {
	return func(c *config) {
		if fn == nil {
			fn = NoPayload
		}
		c.extractor = fn
	}
}

// WithLogger sets the logger used for classification events.
// The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}

// WithMetrics enables error counters. See NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithMaxErrorBody bounds how much of an error response body is buffered
// for the payload extractor. Values <= 0 restore DefaultMaxErrorBody.
func WithMaxErrorBody(n int64) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxErrorBody
		}
		c.maxErrorBody = n
	}
}
