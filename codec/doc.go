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

// Package codec provides the deserializers that turn HTTP response bodies
// into Go values, and the media-type registry that selects one.
//
// The registry mirrors how host serialization pipelines behave: when no
// decoder is registered for a response's media type, the raw body passes
// through untouched as a []byte. Package httpx guards this step and turns
// both decoder failures and such passthroughs into
// apicallerror.InvalidDataError.
//
// Decoders:
//
//   - JSON and StrictJSON, backed by encoding/json;
//   - YAML, backed by gopkg.in/yaml.v3;
//   - JSONSchema, which validates a body with gojsonschema before handing it
//     to another decoder.
package codec
