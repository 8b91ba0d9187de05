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

// Package apis defines the public Go-level contracts of the API call error
// taxonomy.
//
// The goal of this package is to provide small, composable interfaces that
// adapters (HTTP, gRPC, resty, loggers) can depend on without importing the
// concrete error implementation in the root package.
//
// Concrete error types implement these interfaces; callers should match on
// the interfaces or on kind.Kind rather than on concrete types when they only
// need a capability (a status code, a server-provided key).
//
// This package must remain lightweight, so it only contains interfaces and
// very small view types.
package apis
