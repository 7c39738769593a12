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

import (
	"fmt"
	"strings"
)

// ScalarContext holds the warning and critical thresholds that a metric is
// evaluated against. A nil range is never violated.
type ScalarContext struct {
	Name     string
	Warning  *Range
	Critical *Range
}

// NewScalarContext parses both thresholds up front so an invalid one
// fails before anything is probed. An empty string means no threshold.
func NewScalarContext(name, warning, critical string) (*ScalarContext, error) {
	w, err := parseOptional(warning)
	if err != nil {
		return nil, fmt.Errorf("context %s: warning: %w", name, err)
	}

	c, err := parseOptional(critical)
	if err != nil {
		return nil, fmt.Errorf("context %s: critical: %w", name, err)
	}

	return &ScalarContext{Name: name, Warning: w, Critical: c}, nil
}

func parseOptional(input string) (*Range, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	r, err := ParseRange(input)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// Evaluate classifies a metric value against the context's thresholds.
func (c *ScalarContext) Evaluate(m *Metric) State {
	return Classify(m.Value, c.Warning, c.Critical)
}

// Describe returns the human readable summary for a metric in the given
// state, naming the violated range when there is one.
func (c *ScalarContext) Describe(m *Metric, state State) string {
	base := fmt.Sprintf("%s is %s%s", m.Label, formatBound(m.Value), m.Unit)

	var r *Range

	switch state {
	case StateCritical:
		r = c.Critical
	case StateWarning:
		r = c.Warning
	case StateOK, StateUnknown:
		return base
	}

	if r == nil {
		return base
	}

	if r.Invert {
		return fmt.Sprintf("%s (inside range %s)", base, r.String()[len(invertPrefix):])
	}

	return fmt.Sprintf("%s (outside range %s)", base, r)
}

func (c *ScalarContext) warningString() string {
	if c == nil || c.Warning == nil {
		return ""
	}

	return c.Warning.String()
}

func (c *ScalarContext) criticalString() string {
	if c == nil || c.Critical == nil {
		return ""
	}

	return c.Critical.String()
}
