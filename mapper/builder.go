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
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/ahparhizgar/api-call-error/kind"
)

type builder struct {
	// httpDefaults holds per-kind HTTP defaults, seeded from defaultHTTP.
	httpDefaults map[kind.Kind]int
	// grpcDefaults holds per-kind gRPC defaults as ints; converted in New().
	grpcDefaults map[kind.Kind]int

	// httpOverride holds per-kind HTTP overrides (above the error's own code).
	httpOverride map[kind.Kind]int
	// grpcOverride holds per-kind gRPC overrides as ints.
	grpcOverride map[kind.Kind]int

	// httpKey and grpcKey hold exact overrides for server-provided error keys.
	httpKey map[string]int
	grpcKey map[string]int

	// errs collects invalid options; New reports them all.
	errs []error

	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]int, len(defaultGRPC)),

		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]int),
		httpKey:      make(map[string]int),
		grpcKey:      make(map[string]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// checkKind records an error unless k is one of the taxonomy kinds.
func (b *builder) checkKind(opt string, k kind.Kind) bool {
	if err := kind.Validate(k); err != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper: %s: %w", opt, err))
		return false
	}
	if !kind.Known(k) {
		b.errs = append(b.errs, fmt.Errorf("mapper: %s: unknown kind %q", opt, k))
		return false
	}
	return true
}

func (b *builder) checkHTTP(opt string, code int) bool {
	if code < 100 || code > 599 {
		b.errs = append(b.errs, fmt.Errorf("mapper: %s: HTTP status %d out of range", opt, code))
		return false
	}
	return true
}

func (b *builder) checkGRPC(opt string, code int) bool {
	if code < int(codes.OK) || code > int(codes.Unauthenticated) {
		b.errs = append(b.errs, fmt.Errorf("mapper: %s: gRPC code %d out of range", opt, code))
		return false
	}
	return true
}

func (b *builder) checkKey(opt, key string) bool {
	if key == "" {
		b.errs = append(b.errs, fmt.Errorf("mapper: %s: empty key", opt))
		return false
	}
	return true
}

// freeze copies src so the mapper never observes later changes.
func freeze[K comparable, V any, W any](src map[K]V, conv func(V) W) map[K]W {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[K]W, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func same(v int) int { return v }

func toCode(v int) codes.Code { return codes.Code(v) }
