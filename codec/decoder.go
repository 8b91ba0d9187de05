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

package codec

//go:generate mockgen -source=decoder.go -destination=mocks/mock_decoder.go -package=mocks Decoder

import (
	"bytes"
	"encoding/json"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Decoder turns raw body bytes into a value of the requested type.
//
// Implementations must return a value whose dynamic type is typ (not a
// pointer to it) or an error. A decoder that returns anything else is
// treated as not having produced the expected type.
type Decoder interface {
	Decode(data []byte, typ reflect.Type) (any, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte, typ reflect.Type) (any, error)

// Decode calls f(data, typ).
func (f DecoderFunc) Decode(data []byte, typ reflect.Type) (any, error) {
	return f(data, typ)
}

// unmarshalFunc decodes data into the value pointed to by v.
type unmarshalFunc func(data []byte, v any) error

// decodeInto allocates a new typ, lets fn fill it in and returns the value.
func decodeInto(data []byte, typ reflect.Type, fn unmarshalFunc) (any, error) {
	ptr := reflect.New(typ)
	if err := fn(data, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

// JSON returns a decoder backed by encoding/json. Unknown fields are
// ignored.
func JSON() Decoder {
	return DecoderFunc(func(data []byte, typ reflect.Type) (any, error) {
		return decodeInto(data, typ, json.Unmarshal)
	})
}

// StrictJSON returns a JSON decoder that rejects unknown fields and
// trailing data after the first value.
func StrictJSON() Decoder {
	return DecoderFunc(func(data []byte, typ reflect.Type) (any, error) {
		return decodeInto(data, typ, func(data []byte, v any) error {
			dec := json.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(v); err != nil {
				return err
			}
			if dec.More() {
				return errTrailingData
			}
			return nil
		})
	})
}

// YAML returns a decoder backed by gopkg.in/yaml.v3.
func YAML() Decoder {
	return DecoderFunc(func(data []byte, typ reflect.Type) (any, error) {
		return decodeInto(data, typ, yaml.Unmarshal)
	})
}
