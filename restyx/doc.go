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

// Package restyx applies the API call error policy to a resty client.
//
// Install wraps the client's transport with httpx.Transport, so requests
// fail with apicallerror errors instead of returning 4xx/5xx responses, and
// rewraps JSON decoding failures as InvalidDataError. Execute runs a request
// and decodes the body through a codec.Registry:
//
//	c := restyx.Install(resty.New(), httpx.WithPayloadExtractor(...))
//	u, err := restyx.Execute[User](c.R().SetContext(ctx), resty.MethodGet, "/users/1", nil)
package restyx
