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

// Package kind provides the canonical identifiers of the API call error
// taxonomy.
//
// A "kind" names exactly one taxonomy member, such as "network",
// "invalid_data", "not_found" or "server". Kinds are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated;
//   - suitable for log fields, metric labels and wire payloads.
//
// Kinds are the tag of the taxonomy union: callers that do not want to
// type-switch on concrete error types can switch on the kind instead.
package kind
