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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated identifier of a taxonomy member.
//
// It is a separate type (not just string) so that callers matching on error
// kinds cannot accidentally compare against raw, unnormalized input.
//
// IMPORTANT: Empty kinds ("") are NOT valid. Every API call error has exactly
// one non-empty kind.
type Kind string

// MinLength and MaxLength define the allowed length range for a kind.
const (
	// MinLength is the minimum length for a valid kind.
	MinLength = 3

	// MaxLength is the maximum length for a valid kind.
	MaxLength = 64
)

const (
	// kindFmt is the canonical pattern for kinds.
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - total length 3..64 characters;
	//	$ - end of string;
	//
	// IMPORTANT: the quantifier {2,63} is tied to MinLength / MaxLength above.
	kindFmt = `^[a-z][a-z0-9_]{2,63}$`
)

// kindRe is precompiled so repeated validations in hot paths do not pay
// the compilation cost.
var kindRe = regexp.MustCompile(kindFmt)

// ErrKindInvalid is returned when a value cannot be parsed or validated as
// a kind.
var ErrKindInvalid = errors.New("apicallerror: invalid kind")

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is returned by lookups that found nothing.
var Empty Kind = ""

// Parse normalizes and validates s. On success it returns a canonical Kind.
//
// Parse only checks the format. Use Known to check that the kind belongs to
// the taxonomy.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings s closer to the canonical form: trims spaces, lowercases
// and replaces '-' with '_'. The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether k is well formed. The empty kind is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
