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

import "encoding/json"

// State is the outcome of a check, using the Nagios plugin exit codes as
// its values.
type State int

const (
	StateOK       State = 0
	StateWarning  State = 1
	StateCritical State = 2
	StateUnknown  State = 3
)

// String returns the label printed in the plugin output line.
func (s State) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the state.
func (s State) ExitCode() int {
	switch s {
	case StateOK, StateWarning, StateCritical:
		return int(s)
	default:
		return int(StateUnknown)
	}
}

// MarshalJSON encodes the state by name.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// rank orders states for aggregation. UNKNOWN outranks WARNING but never
// masks a CRITICAL.
func (s State) rank() int {
	switch s {
	case StateOK:
		return 0
	case StateWarning:
		return 1
	case StateCritical:
		return 3
	default:
		return 2
	}
}

// Classify turns an observed value into a state. The critical range is
// evaluated first so a value violating both ranges is always CRITICAL. A nil
// range never fires.
func Classify(value float64, warning, critical *Range) State {
	if critical != nil && critical.Alert(value) {
		return StateCritical
	}

	if warning != nil && warning.Alert(value) {
		return StateWarning
	}

	return StateOK
}

// Worst returns the most severe of the given states, or OK when none are
// given.
func Worst(states ...State) State {
	worst := StateOK

	for _, s := range states {
		if s.rank() > worst.rank() {
			worst = s
		}
	}

	return worst
}
