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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/apis"
	"github.com/ahparhizgar/api-call-error/mapper"
)

func TestStatus_ClientErrorCarriesKeyAndUserMessage(t *testing.T) {
	err := apicallerror.NewNotFound("client error (404)",
		apicallerror.WithKey("USER_NOT_FOUND"),
		apicallerror.WithUserMessage("no such user"),
	)

	st, ok := Status(context.Background(), err, mapper.Default(), "users.example.com")
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "client error (404)", st.Message())

	ei, ok := ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "USER_NOT_FOUND", ei.GetReason())
	assert.Equal(t, "users.example.com", ei.GetDomain())
	assert.Equal(t, map[string]string{
		MetaKind:           "not_found",
		MetaHTTPStatus:     "404",
		MetaUpstreamStatus: "404",
	}, ei.GetMetadata())

	msg, ok := ExtractUserMessage(st.Err())
	require.True(t, ok)
	assert.Equal(t, "no such user", msg)
}

func TestStatus_NetworkErrorUsesKindAsReason(t *testing.T) {
	err := apicallerror.NewNetworkError("a network failure occurred",
		apicallerror.WithCause(errors.New("dial tcp: connection refused")))

	st, ok := Status(context.Background(), err, mapper.Default(), "")
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())

	ei, ok := ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "NETWORK", ei.GetReason())
	assert.Equal(t, "502", ei.GetMetadata()[MetaHTTPStatus])
	assert.NotContains(t, ei.GetMetadata(), MetaUpstreamStatus)

	_, ok = ExtractUserMessage(st.Err())
	assert.False(t, ok)
	assert.NotContains(t, st.Message(), "connection refused")
}

func TestStatus_FindsWrappedError(t *testing.T) {
	err := fmt.Errorf("load profile: %w", apicallerror.NewForbidden("client error (403)"))

	st, ok := Status(context.Background(), err, mapper.Default(), "")
	require.True(t, ok)
	assert.Equal(t, codes.PermissionDenied, st.Code())
}

func TestStatus_NotAnAPICallError(t *testing.T) {
	_, ok := Status(context.Background(), errors.New("boom"), mapper.Default(), "")
	assert.False(t, ok)
}

func TestStatus_StructPayload(t *testing.T) {
	err := apicallerror.NewBadRequest("client error (400)",
		apicallerror.WithPayload(map[string]any{"field": "email", "attempts": 3.0}))

	st, ok := Status(context.Background(), err, mapper.Default(), "")
	require.True(t, ok)

	packed, ok := ExtractPayload(st.Err())
	require.True(t, ok)
	var s structpb.Struct
	require.NoError(t, packed.UnmarshalTo(&s))
	assert.Equal(t, map[string]any{"field": "email", "attempts": 3.0}, s.AsMap())
}

func TestStatus_ProtoPayload(t *testing.T) {
	err := apicallerror.NewServerError(503, "server error (503)",
		apicallerror.WithPayload(wrapperspb.String("maintenance")))

	st, ok := Status(context.Background(), err, mapper.Default(), "")
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())

	packed, ok := ExtractPayload(st.Err())
	require.True(t, ok)
	var v wrapperspb.StringValue
	require.NoError(t, packed.UnmarshalTo(&v))
	assert.Equal(t, "maintenance", v.GetValue())
}

func TestStatus_UnsupportedPayloadIsDropped(t *testing.T) {
	err := apicallerror.NewBadRequest("x", apicallerror.WithPayload([]string{"a"}))

	st, ok := Status(context.Background(), err, mapper.Default(), "")
	require.True(t, ok)
	_, ok = ExtractPayload(st.Err())
	assert.False(t, ok)
}

func TestStatus_MetadataFn(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-42")

	fn := func(ctx context.Context, e apis.Error) map[string]string {
		return map[string]string{
			"request_id": ctx.Value(ctxKey{}).(string),
			MetaKind:     "ignored",
		}
	}
	st, ok := Status(ctx, apicallerror.NewUnauthorized("x"), mapper.Default(), "", WithMetadata(fn))
	require.True(t, ok)

	ei, ok := ExtractErrorInfo(st.Err())
	require.True(t, ok)
	assert.Equal(t, "req-42", ei.GetMetadata()["request_id"])
	assert.Equal(t, "unauthorized", ei.GetMetadata()[MetaKind])
}

func TestStatus_OKCodeBecomesUnknown(t *testing.T) {
	m := mapper.MustNew(mapper.WithKeyGRPC("FINE", int(codes.OK)))
	err := apicallerror.NewBadRequest("x", apicallerror.WithKey("FINE"))

	st, ok := Status(context.Background(), err, m, "")
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())
	assert.Error(t, st.Err())
}

func TestUnaryServerInterceptor(t *testing.T) {
	icpt := UnaryServerInterceptor(mapper.Default(), "svc", WithLocale("de-DE"))
	info := &grpc.UnaryServerInfo{FullMethod: "/svc.Users/Get"}

	t.Run("success", func(t *testing.T) {
		resp, err := icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	})

	t.Run("api call error", func(t *testing.T) {
		_, err := icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, apicallerror.NewRateLimitReached("client error (429)",
				apicallerror.WithUserMessage("slow down"))
		})
		st, ok := gstatus.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.ResourceExhausted, st.Code())
		msg, ok := ExtractUserMessage(err)
		require.True(t, ok)
		assert.Equal(t, "slow down", msg)
	})

	t.Run("foreign error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := icpt(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, boom
		})
		assert.Same(t, boom, err)
	})
}

func TestExtract_NilAndNonStatus(t *testing.T) {
	_, ok := ExtractErrorInfo(nil)
	assert.False(t, ok)
	_, ok = ExtractErrorInfo(errors.New("plain"))
	assert.False(t, ok)
	_, ok = ExtractPayload(nil)
	assert.False(t, ok)
}
