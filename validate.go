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

package apicallerror

// InvalidData returns an InvalidDataError. It is meant for caller-side
// integrity checks after a value has been deserialized:
//
//	if user.ID == 0 {
//	    return apicallerror.InvalidData("user without id", apicallerror.WithPayload(raw))
//	}
func InvalidData(message string, opts ...Option) error {
	return NewInvalidDataError(message, opts...)
}

// RequireData returns nil when condition holds. Otherwise it returns an
// InvalidDataError carrying payload and the message produced by message.
//
// message is only evaluated on failure, so the success path does no string
// work.
func RequireData(condition bool, payload any, message func() string) error {
	if condition {
		return nil
	}
	return InvalidData(message(), WithPayload(payload))
}
