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
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mock_nagios.go -package=nagios github.com/mfreeman451/cohesity-checks/pkg/nagios Probe

// Probe acquires the metrics for one check.
type Probe interface {
	// Name is printed at the start of the plugin output line.
	Name() string
	Probe(ctx context.Context) ([]Metric, error)
}

// Outcome is a metric together with the state it was classified into.
type Outcome struct {
	Metric  Metric
	State   State
	Context *ScalarContext
}

// Result is the evaluated outcome of a check run.
type Result struct {
	Name     string
	State    State
	Outcomes []Outcome
	Summary  string
	Err      error
}

// Check binds a probe to the contexts its metrics are evaluated against.
type Check struct {
	probe    Probe
	contexts map[string]*ScalarContext
}

// NewCheck creates a check for the probe.
func NewCheck(probe Probe, contexts ...*ScalarContext) *Check {
	c := &Check{
		probe:    probe,
		contexts: make(map[string]*ScalarContext, len(contexts)),
	}

	for _, sc := range contexts {
		c.Add(sc)
	}

	return c
}

// Add registers a context, replacing any context with the same name.
func (c *Check) Add(sc *ScalarContext) {
	c.contexts[sc.Name] = sc
}

// Name returns the probe name.
func (c *Check) Name() string {
	return c.probe.Name()
}

// Run probes and classifies every metric. Any probe error, panic or metric
// without a matching context yields StateUnknown.
func (c *Check) Run(ctx context.Context) (res *Result) {
	res = &Result{Name: c.probe.Name()}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Probe %s panicked: %v", res.Name, r)
			res.fail(fmt.Errorf("%w: %v", ErrProbePanic, r))
		}
	}()

	metrics, err := c.probe.Probe(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("timeout: check execution aborted: %w", err)
		}

		log.Debugf("Probe %s failed: %v", res.Name, err)
		res.fail(err)

		return res
	}

	if len(metrics) == 0 {
		res.fail(ErrNoMetrics)

		return res
	}

	states := make([]State, 0, len(metrics))

	for i := range metrics {
		m := metrics[i]

		sc, ok := c.contexts[m.Context]
		if !ok {
			res.fail(fmt.Errorf("%w: %q for metric %q", ErrNoContext, m.Context, m.Label))

			return res
		}

		state := sc.Evaluate(&m)
		log.Debugf("Probe %s: %s = %v -> %s", res.Name, m.Label, m.Value, state)

		res.Outcomes = append(res.Outcomes, Outcome{Metric: m, State: state, Context: sc})
		states = append(states, state)
	}

	res.State = Worst(states...)
	res.Summary = res.summarize()

	return res
}

func (r *Result) fail(err error) {
	r.State = StateUnknown
	r.Err = err
	r.Summary = err.Error()
	r.Outcomes = nil
}

// summarize describes the first outcome in the overall state, or the first
// outcome when everything is OK.
func (r *Result) summarize() string {
	for i := range r.Outcomes {
		o := &r.Outcomes[i]
		if o.State == r.State {
			return o.Context.Describe(&o.Metric, o.State)
		}
	}

	return ""
}

// Perfdata returns the space separated performance data of all outcomes.
func (r *Result) Perfdata() string {
	parts := make([]string, 0, len(r.Outcomes))

	for i := range r.Outcomes {
		o := &r.Outcomes[i]
		parts = append(parts, o.Metric.Perfdata(o.Context))
	}

	return strings.Join(parts, " ")
}

// String renders the single plugin output line.
func (r *Result) String() string {
	var b strings.Builder

	if r.Name != "" {
		b.WriteString(r.Name)
		b.WriteString(" ")
	}

	b.WriteString(r.State.String())

	if r.Summary != "" {
		b.WriteString(" - ")
		b.WriteString(r.Summary)
	}

	if perf := r.Perfdata(); perf != "" {
		b.WriteString(" | ")
		b.WriteString(perf)
	}

	return b.String()
}

// Main runs the check, writes the output line to w and returns the process
// exit code.
func Main(ctx context.Context, check *Check, w io.Writer) int {
	res := check.Run(ctx)

	if _, err := fmt.Fprintln(w, res.String()); err != nil {
		log.Errorf("Failed to write check output: %v", err)
	}

	return res.State.ExitCode()
}
