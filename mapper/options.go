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

package mapper

import (
	"github.com/ahparhizgar/api-call-error/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper. Invalid arguments make New fail.
type Option func(*builder)

// WithHTTPDefault replaces the default HTTP status of a kind. Defaults are
// only used when the error carries no HTTP status of its own.
func WithHTTPDefault(k kind.Kind, http int) Option {
	return func(b *builder) {
		if b.checkKind("WithHTTPDefault", k) && b.checkHTTP("WithHTTPDefault", http) {
			b.httpDefaults[k] = http
		}
	}
}

// WithGRPCDefault replaces the default gRPC code of a kind.
func WithGRPCDefault(k kind.Kind, grpc int) Option {
	return func(b *builder) {
		if b.checkKind("WithGRPCDefault", k) && b.checkGRPC("WithGRPCDefault", grpc) {
			b.grpcDefaults[k] = grpc
		}
	}
}

// WithHTTPOverride forces the HTTP status of every error of kind k, even
// those that carry a status of their own. Key overrides still win.
func WithHTTPOverride(k kind.Kind, http int) Option {
	return func(b *builder) {
		if b.checkKind("WithHTTPOverride", k) && b.checkHTTP("WithHTTPOverride", http) {
			b.httpOverride[k] = http
		}
	}
}

// WithGRPCOverride forces the gRPC code of every error of kind k.
func WithGRPCOverride(k kind.Kind, grpc int) Option {
	return func(b *builder) {
		if b.checkKind("WithGRPCOverride", k) && b.checkGRPC("WithGRPCOverride", grpc) {
			b.grpcOverride[k] = grpc
		}
	}
}

// WithKeyHTTP maps client errors carrying the server-provided key to an
// HTTP status. Keys are matched exactly.
func WithKeyHTTP(key string, http int) Option {
	return func(b *builder) {
		if b.checkKey("WithKeyHTTP", key) && b.checkHTTP("WithKeyHTTP", http) {
			b.httpKey[key] = http
		}
	}
}

// WithKeyGRPC maps client errors carrying the server-provided key to a gRPC
// code. Keys are matched exactly.
func WithKeyGRPC(key string, grpc int) Option {
	return func(b *builder) {
		if b.checkKey("WithKeyGRPC", key) && b.checkGRPC("WithKeyGRPC", grpc) {
			b.grpcKey[key] = grpc
		}
	}
}
