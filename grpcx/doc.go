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

// Package grpcx projects API call errors onto gRPC statuses.
//
// A service relaying an upstream HTTP failure to its gRPC callers gets a
// status whose code comes from an apis.Mapper and whose details carry the
// key, user message and payload in standard google.rpc shapes
// (ErrorInfo, LocalizedMessage).
package grpcx
