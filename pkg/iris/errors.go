/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package iris

import "errors"

var (
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrAuthentication is returned when no session token could be obtained.
	ErrAuthentication = errors.New("authentication failed")
	// ErrMissingField is returned when a response lacks a field a caller
	// needs.
	ErrMissingField = errors.New("response is missing a required field")

	errEmptyToken   = errors.New("empty access token")
	errUnauthorized = errors.New("session rejected")
	errNoAddress    = errors.New("cluster address is required")
)
