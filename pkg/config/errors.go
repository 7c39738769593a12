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

package config

import "errors"

var (
	// ErrMissingCredential is returned when the auth file lacks a username
	// or password for the host.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidConfig is returned by Validate for an unusable configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	errReadFile        = errors.New("failed to read file")
	errUnmarshal       = errors.New("failed to unmarshal JSON")
	errInvalidDuration = errors.New("invalid duration")
	errLoadAuthFile    = errors.New("failed to load auth file")
	errUnknownHost     = errors.New("host not found in auth file")
	errUnknownFormat   = errors.New("unknown webhook format")
	errNoWebhookURL    = errors.New("enabled webhook has no url")
)
