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

package nagios

import "errors"

var (
	// ErrInvalidRange is returned for a threshold that does not match the
	// range syntax. It is fatal to a check invocation.
	ErrInvalidRange = errors.New("invalid range")
	// ErrNoContext is returned when a metric names a context that was never
	// added to the check.
	ErrNoContext = errors.New("no context registered for metric")
	// ErrNoMetrics is returned when a probe reports nothing to evaluate.
	ErrNoMetrics = errors.New("probe returned no metrics")
	// ErrProbePanic is returned when a probe panics.
	ErrProbePanic = errors.New("probe panicked")

	errMissingBound = errors.New("missing bound")
	errBadNumber    = errors.New("not a finite number")
)
