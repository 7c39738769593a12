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

package db

import "time"

// CheckResult is one stored run of a check. State holds the plugin exit
// code and Value the first metric value, if any.
type CheckResult struct {
	ID        int64     `json:"id"`
	CheckName string    `json:"check_name"`
	State     int       `json:"state"`
	Value     *float64  `json:"value,omitempty"`
	Summary   string    `json:"summary"`
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}
