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

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var errTrailingData = errors.New("codec: unexpected data after top-level value")

// SchemaError reports a body that does not conform to a JSON schema.
type SchemaError struct {
	// Violations holds one human-readable line per schema violation.
	Violations []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("codec: body violates schema: %s", strings.Join(e.Violations, "; "))
}

// JSONSchema returns a decoder that validates the body against schema
// before delegating to inner. A nil inner means JSON().
//
// The schema is compiled once; an invalid schema is reported by the first
// Decode call.
func JSONSchema(schema string, inner Decoder) Decoder {
	if inner == nil {
		inner = JSON()
	}
	compiled, compileErr := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	return DecoderFunc(func(data []byte, typ reflect.Type) (any, error) {
		if compileErr != nil {
			return nil, fmt.Errorf("codec: invalid schema: %w", compileErr)
		}
		res, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
		if err != nil {
			return nil, err
		}
		if !res.Valid() {
			se := &SchemaError{}
			for _, re := range res.Errors() {
				se.Violations = append(se.Violations, re.String())
			}
			return nil, se
		}
		return inner.Decode(data, typ)
	})
}
