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
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apicallerror "github.com/ahparhizgar/api-call-error"
	"github.com/ahparhizgar/api-call-error/codec"
	"github.com/ahparhizgar/api-call-error/codec/mocks"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeBytes_Valid(t *testing.T) {
	u, err := DecodeBytes[user]("application/json", []byte(`{"id":1,"name":"ada"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, user{ID: 1, Name: "ada"}, u)
}

func TestDecodeBytes_MalformedIsInvalidDataWithCause(t *testing.T) {
	_, err := DecodeBytes[user]("application/json", []byte(`{`), nil)

	var inv *apicallerror.InvalidDataError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, MsgConvertFailure, inv.Message())
	require.Error(t, inv.Unwrap())
	assert.Contains(t, inv.Unwrap().Error(), "unexpected end of JSON input")
}

func TestDecodeBytes_NoDecoderIsInvalidDataWithoutCause(t *testing.T) {
	_, err := DecodeBytes[user]("text/plain", []byte(`hello`), nil)

	var inv *apicallerror.InvalidDataError
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Message(), "no suitable deserializer")
	assert.Contains(t, inv.Message(), "httpx.user")
	assert.Nil(t, inv.Unwrap())
}

func TestDecodeBytes_PassthroughForRawBytes(t *testing.T) {
	b, err := DecodeBytes[[]byte]("application/octet-stream", []byte{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestDecodeBytes_JSONNullIntoInterface(t *testing.T) {
	v, err := DecodeBytes[any]("application/json", []byte(`null`), nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecodeBytes_SchemaViolation(t *testing.T) {
	reg := codec.NewRegistry(codec.WithDecoder(codec.MediaTypeJSON, codec.JSONSchema(`{
		"type": "object",
		"required": ["id"]
	}`, codec.JSON())))

	_, err := DecodeBytes[user]("application/json", []byte(`{"name":"ada"}`), reg)

	var inv *apicallerror.InvalidDataError
	require.ErrorAs(t, err, &inv)
	var schemaErr *codec.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestDecodeBytes_WithMockDecoder(t *testing.T) {
	ctrl := gomock.NewController(t)
	dec := mocks.NewMockDecoder(ctrl)
	reg := codec.NewRegistry(codec.WithDecoder("application/vnd.users", dec))

	typ := reflect.TypeOf((*user)(nil)).Elem()
	gomock.InOrder(
		dec.EXPECT().Decode([]byte("ok"), typ).Return(user{ID: 9}, nil),
		dec.EXPECT().Decode([]byte("broken"), typ).Return(nil, errors.New("corrupt")),
		dec.EXPECT().Decode([]byte("wrong"), typ).Return("a string", nil),
	)

	u, err := DecodeBytes[user]("application/vnd.users", []byte("ok"), reg)
	require.NoError(t, err)
	assert.Equal(t, 9, u.ID)

	_, err = DecodeBytes[user]("application/vnd.users", []byte("broken"), reg)
	var inv *apicallerror.InvalidDataError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, MsgConvertFailure, inv.Message())
	assert.EqualError(t, inv.Unwrap(), "corrupt")

	_, err = DecodeBytes[user]("application/vnd.users", []byte("wrong"), reg)
	require.ErrorAs(t, err, &inv)
	assert.Contains(t, inv.Message(), "no suitable deserializer")
	assert.Nil(t, inv.Unwrap())
}

func TestDecode_ClosesBody(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader(`{"id":2}`)}
	resp := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       body,
	}

	u, err := Decode[user](resp, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, u.ID)
	assert.True(t, body.closed)
}

func TestDecode_ReadFailureIsNetworkError(t *testing.T) {
	resp := &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(failingReader{}),
	}

	_, err := Decode[user](resp, nil)
	var netErr *apicallerror.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }
