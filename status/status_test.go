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

package status

import (
	"testing"

	"github.com/ahparhizgar/api-call-error/kind"
)

func TestClassify_Reserved(t *testing.T) {
	want := map[int]kind.Kind{
		400: kind.BadRequest,
		401: kind.Unauthorized,
		403: kind.Forbidden,
		404: kind.NotFound,
		429: kind.RateLimitReached,
	}
	for _, code := range Reserved() {
		got, ok := Classify(code)
		if !ok {
			t.Fatalf("Classify(%d) not classified", code)
		}
		if got != want[code] {
			t.Fatalf("Classify(%d) = %q, want %q", code, got, want[code])
		}
		if !IsReserved(code) {
			t.Fatalf("IsReserved(%d) = false", code)
		}
	}
	if len(Reserved()) != len(want) {
		t.Fatalf("Reserved() = %v, want %d codes", Reserved(), len(want))
	}
}

func TestClassify_OtherClientErrors(t *testing.T) {
	for code := ClientErrorMin; code <= ClientErrorMax; code++ {
		if IsReserved(code) {
			continue
		}
		got, ok := Classify(code)
		if !ok || got != kind.OtherClient {
			t.Fatalf("Classify(%d) = (%q, %v), want (%q, true)", code, got, ok, kind.OtherClient)
		}
	}
}

func TestClassify_ServerErrors(t *testing.T) {
	for code := ServerErrorMin; code <= ServerErrorMax; code++ {
		got, ok := Classify(code)
		if !ok || got != kind.Server {
			t.Fatalf("Classify(%d) = (%q, %v), want (%q, true)", code, got, ok, kind.Server)
		}
	}
}

func TestClassify_NotAnError(t *testing.T) {
	codes := []int{0, 100, 101, 200, 204, 299, 301, 304, 399, 600, 999, -1}
	for _, code := range codes {
		got, ok := Classify(code)
		if ok || got != kind.Empty {
			t.Fatalf("Classify(%d) = (%q, %v), want not classified", code, got, ok)
		}
		if IsError(code) {
			t.Fatalf("IsError(%d) = true", code)
		}
	}
}

func TestClassify_IsPure(t *testing.T) {
	for code := 0; code < 700; code++ {
		k1, ok1 := Classify(code)
		k2, ok2 := Classify(code)
		if k1 != k2 || ok1 != ok2 {
			t.Fatalf("Classify(%d) is not stable: (%q,%v) vs (%q,%v)", code, k1, ok1, k2, ok2)
		}
	}
}

func TestRangeBoundaries(t *testing.T) {
	if IsClientError(399) || !IsClientError(400) || !IsClientError(499) || IsClientError(500) {
		t.Fatalf("client error boundaries are wrong")
	}
	if IsServerError(499) || !IsServerError(500) || !IsServerError(599) || IsServerError(600) {
		t.Fatalf("server error boundaries are wrong")
	}
}
