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

const perfdataSep = ";"

// Metric is a single observation produced by a probe.
type Metric struct {
	Label   string
	Value   float64
	Unit    string
	Min     *float64
	Max     *float64
	Context string
}

// NewMetric returns a metric bound to the named context.
func NewMetric(label string, value float64, contextName string) Metric {
	return Metric{Label: label, Value: value, Context: contextName}
}

// WithMin returns a copy of m with the lower bound set.
func (m Metric) WithMin(v float64) Metric {
	m.Min = &v

	return m
}

// WithMax returns a copy of m with the upper bound set.
func (m Metric) WithMax(v float64) Metric {
	m.Max = &v

	return m
}

// WithUnit returns a copy of m with the unit of measure set.
func (m Metric) WithUnit(unit string) Metric {
	m.Unit = unit

	return m
}

// Perfdata renders the metric in the plugin performance data format:
//
//	'label'=value[UOM];[warn];[crit];[min];[max]
//
// Trailing empty fields are dropped.
func (m *Metric) Perfdata(ctx *ScalarContext) string {
	fields := []string{
		fmt.Sprintf("'%s'=%s%s", strings.ReplaceAll(m.Label, "'", "''"), formatBound(m.Value), m.Unit),
		ctx.warningString(),
		ctx.criticalString(),
		optionalBound(m.Min),
		optionalBound(m.Max),
	}

	last := len(fields)
	for last > 1 && fields[last-1] == "" {
		last--
	}

	return strings.Join(fields[:last], perfdataSep)
}

func optionalBound(v *float64) string {
	if v == nil {
		return ""
	}

	return formatBound(*v)
}
