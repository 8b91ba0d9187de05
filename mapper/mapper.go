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
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/ahparhizgar/api-call-error/apis"
	"github.com/ahparhizgar/api-call-error/kind"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, kind overrides, key overrides).
//  3. Report every invalid option at once.
//  4. Freeze all maps into immutable copies.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}

	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults, same),
		grpcDefault:  freeze(b.grpcDefaults, toCode),
		httpOverride: freeze(b.httpOverride, same),
		grpcOverride: freeze(b.grpcOverride, toCode),
		httpKey:      freeze(b.httpKey, same),
		grpcKey:      freeze(b.grpcKey, toCode),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

var defaultMapper = MustNew()

// Default returns the shared mapper built without options.
func Default() apis.Mapper { return defaultMapper }

// mapper combines key overrides, kind overrides, the status carried by the
// error, and per-kind defaults. It is safe for concurrent use once built.
type mapper struct {
	httpDefault map[kind.Kind]int
	grpcDefault map[kind.Kind]codes.Code

	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	httpKey map[string]int
	grpcKey map[string]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Tiers reported by Explain.
const (
	sourceKey      = "key"
	sourceOverride = "override"
	sourceStatus   = "status"
	sourceDefault  = "default"
	sourceFallback = "fallback"
)

// HTTPStatus resolves an HTTP status for err.
//
// Resolution order (highest to lowest):
//  1. exact override for the client error key;
//  2. override for the kind;
//  3. the status carried by an HTTPError;
//  4. default for the kind;
//  5. fallback (500).
func (m *mapper) HTTPStatus(err apis.Error) int {
	v, _ := m.resolveHTTP(err)
	return v
}

// GRPCStatus resolves a gRPC code for err, with the same precedence as
// HTTPStatus. The status tier translates the carried HTTP status when it has
// a canonical gRPC equivalent.
func (m *mapper) GRPCStatus(err apis.Error) codes.Code {
	v, _ := m.resolveGRPC(err)
	return v
}

// Status resolves both HTTP and gRPC for err.
func (m *mapper) Status(err apis.Error) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(err),
		GRPC: m.GRPCStatus(err),
	}
}

// Explain produces a textual trace of how the mapper resolved err.
//
// Example output:
//
//	kind="not_found" code=404 key="USER_NOT_FOUND"
//	http: source=key -> 410
//	grpc: source=status -> NOTFOUND(5)
//
// This is intended for inspection and logging, not for stable machine parsing.
func (m *mapper) Explain(err apis.Error) string {
	var b strings.Builder
	if err == nil {
		b.WriteString("kind=<nil>")
	} else {
		_, _ = fmt.Fprintf(&b, "kind=%q", err.Kind())
		if he, ok := err.(apis.HTTPError); ok {
			_, _ = fmt.Fprintf(&b, " code=%d", he.Code())
		}
		if key := keyOf(err); key != "" {
			_, _ = fmt.Fprintf(&b, " key=%q", key)
		}
	}

	hv, hsrc := m.resolveHTTP(err)
	_, _ = fmt.Fprintf(&b, "\nhttp: source=%s -> %d", hsrc, hv)

	gv, gsrc := m.resolveGRPC(err)
	_, _ = fmt.Fprintf(&b, "\ngrpc: source=%s -> %s(%d)", gsrc, strings.ToUpper(gv.String()), int(gv))

	return b.String()
}

func (m *mapper) resolveHTTP(err apis.Error) (int, string) {
	if err == nil {
		return m.fallbackHTTP, sourceFallback
	}
	if key := keyOf(err); key != "" {
		if v, ok := m.httpKey[key]; ok {
			return v, sourceKey
		}
	}
	k := err.Kind()
	if v, ok := m.httpOverride[k]; ok {
		return v, sourceOverride
	}
	if he, ok := err.(apis.HTTPError); ok {
		return he.Code(), sourceStatus
	}
	if v, ok := m.httpDefault[k]; ok {
		return v, sourceDefault
	}
	return m.fallbackHTTP, sourceFallback
}

func (m *mapper) resolveGRPC(err apis.Error) (codes.Code, string) {
	if err == nil {
		return m.fallbackGRPC, sourceFallback
	}
	if key := keyOf(err); key != "" {
		if v, ok := m.grpcKey[key]; ok {
			return v, sourceKey
		}
	}
	k := err.Kind()
	if v, ok := m.grpcOverride[k]; ok {
		return v, sourceOverride
	}
	if he, ok := err.(apis.HTTPError); ok {
		if v, ok := statusGRPC[he.Code()]; ok {
			return v, sourceStatus
		}
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v, sourceDefault
	}
	return m.fallbackGRPC, sourceFallback
}

func keyOf(err apis.Error) string {
	if ce, ok := err.(apis.ClientError); ok {
		return ce.Key()
	}
	return ""
}
