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

// Package status classifies HTTP status codes into API call error kinds.
//
// The HTTP error boundary is fixed:
//
//   - 400..499 are client errors;
//   - 500..599 are server errors;
//   - everything else, including 1xx, 2xx, 3xx and anything from 600 up, is
//     not an error as far as this package is concerned.
//
// Five client codes are reserved because they have a dedicated kind:
// 400, 401, 403, 404 and 429. Every other 4xx code maps to
// kind.OtherClient and every 5xx code maps to kind.Server.
//
// Classification is a pure function: the same code always yields the same
// kind.
package status
