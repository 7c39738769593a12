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
	"context"
	"sync"

	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
)

// CheckAdapter exposes a nagios check as a Checker. The service counts as
// available while the check is OK or WARNING; the details are the plugin
// output line.
type CheckAdapter struct {
	name  string
	check *nagios.Check
	mu    sync.RWMutex
	last  *nagios.Result
}

// NewCheckAdapter wraps check under the given service name.
func NewCheckAdapter(name string, check *nagios.Check) *CheckAdapter {
	return &CheckAdapter{name: name, check: check}
}

// Name returns the service name the adapter was registered under.
func (a *CheckAdapter) Name() string {
	return a.name
}

// Check implements Checker.
func (a *CheckAdapter) Check(ctx context.Context) (bool, string) {
	res := a.Run(ctx)

	return Available(res.State), res.String()
}

// Run executes the check and remembers the result.
func (a *CheckAdapter) Run(ctx context.Context) *nagios.Result {
	res := a.check.Run(ctx)

	a.mu.Lock()
	a.last = res
	a.mu.Unlock()

	return res
}

// LastResult returns the most recent result, or nil before the first run.
func (a *CheckAdapter) LastResult() *nagios.Result {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.last
}

// Available reports whether a state counts as an available service.
func Available(state nagios.State) bool {
	return state == nagios.StateOK || state == nagios.StateWarning
}
