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
	"strings"
	"sync"
	"testing"

	"google.golang.org/grpc/codes"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/apis"
	"github.com/ahparhizgar/api-call-error/kind"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(e apis.Error, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(e)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%v) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				e, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(apicallerror.NewNetworkError("down"), 502, codes.Unavailable)
	check(apicallerror.NewInvalidDataError("garbage"), 502, codes.Internal)
	check(apicallerror.NewBadRequest("x"), 400, codes.InvalidArgument)
	check(apicallerror.NewNotFound("x"), 404, codes.NotFound)
	check(apicallerror.NewRateLimitReached("x"), 429, codes.ResourceExhausted)
	check(apicallerror.NewServerError(503, "x"), 503, codes.Unavailable)
}

func TestStatusTier_KeepsOwnCode(t *testing.T) {
	m := MustNew()

	st := m.Status(apicallerror.NewOtherClientError(409, "conflict"))
	if st.HTTP != 409 || st.GRPC != codes.Aborted {
		t.Fatalf("got %+v; want 409/Aborted", st)
	}

	// 418 has no gRPC translation: the kind default applies.
	st = m.Status(apicallerror.NewOtherClientError(418, "teapot"))
	if st.HTTP != 418 || st.GRPC != codes.FailedPrecondition {
		t.Fatalf("got %+v; want 418/FailedPrecondition", st)
	}
}

func TestPriority_KeyOverKindOverStatus_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.NotFound, 400),
		WithHTTPOverride(kind.NotFound, 502),
		WithKeyHTTP("USER_DELETED", 410),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	keyed := apicallerror.NewNotFound("x", apicallerror.WithKey("USER_DELETED"))
	if got := m.HTTPStatus(keyed); got != 410 {
		t.Fatalf("key override must win; got %d, want 410", got)
	}
	other := apicallerror.NewNotFound("x", apicallerror.WithKey("OTHER"))
	if got := m.HTTPStatus(other); got != 502 {
		t.Fatalf("kind override must beat the carried status; got %d, want 502", got)
	}
}

func TestPriority_KeyOverKindOverStatus_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCOverride(kind.Server, int(codes.Aborted)),
		WithKeyGRPC("MAINTENANCE", int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(apicallerror.NewServerError(500, "x")); got != codes.Aborted {
		t.Fatalf("kind override must win; got %v, want %v", got, codes.Aborted)
	}
	keyed := apicallerror.NewForbidden("x", apicallerror.WithKey("MAINTENANCE"))
	if got := m.GRPCStatus(keyed); got != codes.Unavailable {
		t.Fatalf("key override must win; got %v, want %v", got, codes.Unavailable)
	}
}

func TestDefault_OnlyWithoutCarriedStatus(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.Network, 504),
		WithHTTPDefault(kind.Server, 503),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(apicallerror.NewNetworkError("x")); got != 504 {
		t.Fatalf("network default: got %d, want 504", got)
	}
	if got := m.HTTPStatus(apicallerror.NewServerError(500, "x")); got != 500 {
		t.Fatalf("carried status must beat default: got %d, want 500", got)
	}
}

func TestNilError_UsesFallback(t *testing.T) {
	m := MustNew()
	st := m.Status(nil)
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("got %+v; want 500/Internal", st)
	}
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"malformed kind", WithHTTPDefault(kind.Kind("Not Found"), 404)},
		{"unknown kind", WithHTTPOverride(kind.Kind("teapot"), 418)},
		{"http out of range", WithHTTPOverride(kind.NotFound, 42)},
		{"grpc out of range", WithGRPCDefault(kind.NotFound, 99)},
		{"empty key", WithKeyHTTP("", 400)},
		{"empty grpc key", WithKeyGRPC("", int(codes.NotFound))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opt); err == nil {
				t.Fatalf("New must fail")
			}
		})
	}
}

func TestNew_ReportsAllErrors(t *testing.T) {
	_, err := New(WithKeyHTTP("", 400), WithHTTPOverride(kind.Kind("bogus_kind"), 400))
	if err == nil {
		t.Fatal("New must fail")
	}
	if !errors.Is(err, kind.ErrKindInvalid) && !strings.Contains(err.Error(), "bogus_kind") {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "empty key") {
		t.Fatalf("error must mention the empty key: %v", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew must panic on invalid options")
		}
	}()
	_ = MustNew(WithKeyHTTP("", 400))
}

func TestExplain_Sources(t *testing.T) {
	m, err := New(WithKeyHTTP("USER_DELETED", 410))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(apicallerror.NewNotFound("x", apicallerror.WithKey("USER_DELETED")))
	if !strings.Contains(exp, "http: source=key -> 410") {
		t.Fatalf("Explain must include the key tier:\n%s", exp)
	}
	if !strings.Contains(exp, "grpc: source=status") {
		t.Fatalf("Explain must include the status tier:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithKeyHTTP("USER_DELETED", 410),
		WithHTTPOverride(kind.Unauthorized, 502),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	errs := []apis.Error{
		apicallerror.NewNotFound("x", apicallerror.WithKey("USER_DELETED")),
		apicallerror.NewUnauthorized("x"),
		apicallerror.NewNetworkError("x"),
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				for _, e := range errs {
					_ = m.Status(e)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(b *testing.B) {
	m := MustNew()
	e := apicallerror.NewNetworkError("x")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}

func BenchmarkMapperStatus_Key(b *testing.B) {
	m := MustNew(WithKeyHTTP("USER_DELETED", 410), WithKeyGRPC("USER_DELETED", int(codes.NotFound)))
	e := apicallerror.NewNotFound("x", apicallerror.WithKey("USER_DELETED"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(e)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
