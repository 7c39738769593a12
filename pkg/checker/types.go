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

package checker

import (
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
)

// Status is the latest known outcome of a named check.
type Status struct {
	Name      string       `json:"name"`
	Available bool         `json:"available"`
	State     nagios.State `json:"state"`
	Summary   string       `json:"summary"`
	Output    string       `json:"output"`
	Perfdata  string       `json:"perfdata,omitempty"`
	LastRun   time.Time    `json:"last_run"`
}

// NewStatus captures res as observed at t.
func NewStatus(name string, res *nagios.Result, t time.Time) Status {
	return Status{
		Name:      name,
		Available: Available(res.State),
		State:     res.State,
		Summary:   res.Summary,
		Output:    res.String(),
		Perfdata:  res.Perfdata(),
		LastRun:   t,
	}
}
