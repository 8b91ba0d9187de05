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
	"mime"
	"reflect"
	"strings"
)

// Media types registered by NewRegistry.
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)

// RegistryOption configures a Registry at build time.
type RegistryOption func(*Registry)

// WithDecoder registers d for mediaType, replacing any previous decoder.
// A nil d removes the registration.
func WithDecoder(mediaType string, d Decoder) RegistryOption {
	return func(r *Registry) {
		mt := normalizeMediaType(mediaType)
		if d == nil {
			delete(r.decoders, mt)
			return
		}
		r.decoders[mt] = d
	}
}

// WithYAML registers YAML() for application/yaml, application/x-yaml and
// text/yaml.
func WithYAML() RegistryOption {
	return func(r *Registry) {
		for _, mt := range []string{MediaTypeYAML, "application/x-yaml", "text/yaml"} {
			r.decoders[mt] = YAML()
		}
	}
}

// WithoutJSONSuffix disables the fallback that decodes any "+json" media
// type (e.g. application/problem+json) with the application/json decoder.
func WithoutJSONSuffix() RegistryOption {
	return func(r *Registry) {
		r.jsonSuffix = false
	}
}

// Registry selects a Decoder by response media type.
//
// A Registry is immutable after NewRegistry returns and is safe for
// concurrent use.
type Registry struct {
	decoders   map[string]Decoder
	jsonSuffix bool
}

// NewRegistry returns a registry with JSON() registered for
// application/json, then applies opts in order.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		decoders:   map[string]Decoder{MediaTypeJSON: JSON()},
		jsonSuffix: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the decoder for contentType. Parameters such as charset
// are ignored and the match is case-insensitive.
func (r *Registry) Lookup(contentType string) (Decoder, bool) {
	mt := normalizeMediaType(contentType)
	if mt == "" {
		return nil, false
	}
	if d, ok := r.decoders[mt]; ok {
		return d, true
	}
	if r.jsonSuffix && strings.HasSuffix(mt, "+json") {
		d, ok := r.decoders[MediaTypeJSON]
		return d, ok
	}
	return nil, false
}

// Decode runs the decoder registered for contentType over data.
//
// When no decoder matches, data is returned unchanged as a []byte, the way a
// host pipeline hands an unconverted body to the next stage. Callers that
// need a value of typ must check the result's dynamic type.
func (r *Registry) Decode(contentType string, data []byte, typ reflect.Type) (any, error) {
	d, ok := r.Lookup(contentType)
	if !ok {
		return data, nil
	}
	return d.Decode(data, typ)
}

func normalizeMediaType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Fall back to the part before the first ';'.
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
