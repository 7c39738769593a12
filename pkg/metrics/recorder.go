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

// Package metrics exports check results as Prometheus collectors.
package metrics

import (
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cohesity"

// Recorder publishes the outcome of every check run.
type Recorder struct {
	state *prometheus.GaugeVec
	value *prometheus.GaugeVec
	runs  *prometheus.CounterVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "check_state",
			Help:      "Latest check state as a Nagios exit code.",
		}, []string{"check"}),
		value: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "check_value",
			Help:      "Latest metric value reported by a check.",
		}, []string{"check", "label"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_runs_total",
			Help:      "Check runs by resulting state.",
		}, []string{"check", "state"}),
	}

	for _, c := range []prometheus.Collector{r.state, r.value, r.runs} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Observe records a check result. Metric values from a failed run are
// left at their previous level.
func (r *Recorder) Observe(check string, res *nagios.Result) {
	if res == nil {
		return
	}

	r.state.WithLabelValues(check).Set(float64(res.State.ExitCode()))
	r.runs.WithLabelValues(check, res.State.String()).Inc()

	for i := range res.Outcomes {
		m := &res.Outcomes[i].Metric
		r.value.WithLabelValues(check, m.Label).Set(m.Value)
	}
}
