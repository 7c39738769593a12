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

// Package cohesity implements the cluster health probes and the checker
// service that runs them.
package cohesity

import (
	"context"
	"fmt"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
)

const (
	defaultDays = 1
	hoursPerDay = 24
)

// Options tune a probe instance. Nil thresholds keep the catalog defaults
// and an empty threshold disables that level.
type Options struct {
	Warning    *string
	Critical   *string
	Days       int    // protection-runs lookback
	ClusterVIP string // only used in log lines
	Now        func() time.Time
}

func (o *Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}

	return time.Now()
}

func (o *Options) days() int {
	if o.Days > 0 {
		return o.Days
	}

	return defaultDays
}

// probeFunc acquires the metrics of one catalog entry.
type probeFunc func(ctx context.Context, p *probe) ([]nagios.Metric, error)

// Definition is a catalog entry.
type Definition struct {
	Name        string // subcommand and check name
	Title       string // printed at the start of the output line
	Context     string
	Description string
	Warning     string
	Critical    string

	fn probeFunc
}

// Catalog lists every probe with its default thresholds.
var Catalog = []Definition{
	{
		Name: "alerts", Title: "COHESITY_ALERT_STATUS", Context: "warning/critical",
		Description: "Open critical and warning alerts raised in the past day",
		Warning:     "~:0", Critical: "~:0", fn: probeAlerts,
	},
	{
		Name: "cluster-health", Title: "COHESITY_CLUSTER_HEALTH", Context: "bad_c",
		Description: "Open critical or warning cluster health alerts",
		Warning:     "~:0", Critical: "~:0", fn: probeClusterHealth,
	},
	{
		Name: "node-alerts", Title: "COHESITY_NODE_STATUS", Context: "bad_nodes",
		Description: "Open critical node health alerts",
		Warning:     "~:0", Critical: "~:0", fn: probeNodeAlerts,
	},
	{
		Name: "node-count", Title: "COHESITY_NODE_STATUS", Context: "difference",
		Description: "Nodes expected by the cluster but not listed",
		Warning:     "~:0", Critical: "~:0", fn: probeNodeCount,
	},
	{
		Name: "node-activity", Title: "COHESITY_NODE_ACTIVITY", Context: "inactive_nodes",
		Description: "Nodes without any running service",
		Warning:     "~:0", Critical: "~:0", fn: probeNodeActivity,
	},
	{
		Name: "storage", Title: "COHESITY_CLUSTER_STORAGE", Context: "cluster_used_storage",
		Description: "Used physical storage in percent",
		Warning:     "~:60", Critical: "~:80", fn: probeStorage,
	},
	{
		Name: "metadata", Title: "COHESITY_CLUSTER_METASTORAGE", Context: "metadata_used",
		Description: "Used metadata space in percent",
		Warning:     "~:60", Critical: "~:80", fn: probeMetadata,
	},
	{
		Name: "objects-protected", Title: "COHESITY_CLUSTER_OBJECTS_PROTECTED", Context: "protected",
		Description: "Protected sources in percent",
		Warning:     "90:", fn: probeObjectsProtected,
	},
	{
		Name: "objects-unprotected", Title: "COHESITY_CLUSTER_OBJECTS_UNPROTECTED", Context: "unprotected",
		Description: "Unprotected sources in percent",
		Warning:     "~:90", fn: probeObjectsUnprotected,
	},
	{
		Name: "reduction", Title: "COHESITY_CLUSTER_DATA_REDUCTION", Context: "ratio",
		Description: "Data reduction ratio",
		Warning:     "@0:1", fn: probeReduction,
	},
	{
		Name: "recoveries", Title: "COHESITY_RECOVERY_STATUS", Context: "recoveries",
		Description: "Recoveries in the last month",
		Warning:     "~:0", fn: probeRecoveries,
	},
	{
		Name: "protection-runs", Title: "COHESITY_PROTECTION_RUN_STATUS", Context: "failed_runs",
		Description: "Failed backup and copy runs in the past days",
		Warning:     "~:0", Critical: "~:0", fn: probeProtectionRuns,
	},
	{
		Name: "policy-runs", Title: "COHESITY_PROTECTION_POLICY_RUN_STATUS", Context: "failures",
		Description: "Failed protection runs within a day of now",
		Warning:     "~:0", Critical: "~:0", fn: probePolicyRuns,
	},
}

// Lookup returns the catalog entry with the given name.
func Lookup(name string) (*Definition, bool) {
	for i := range Catalog {
		if Catalog[i].Name == name {
			return &Catalog[i], true
		}
	}

	return nil, false
}

// Names returns the catalog names in catalog order.
func Names() []string {
	names := make([]string, len(Catalog))
	for i := range Catalog {
		names[i] = Catalog[i].Name
	}

	return names
}

// New builds the check for the named probe. Thresholds are parsed before
// anything is probed, so an invalid one fails here.
func New(name string, client iris.Client, opts Options) (*nagios.Check, error) {
	def, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProbe, name)
	}

	warning, critical := def.Warning, def.Critical
	if opts.Warning != nil {
		warning = *opts.Warning
	}

	if opts.Critical != nil {
		critical = *opts.Critical
	}

	sc, err := nagios.NewScalarContext(def.Context, warning, critical)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	p := &probe{def: def, client: client, opts: opts}

	return nagios.NewCheck(p, sc), nil
}

// probe binds a catalog entry to a client.
type probe struct {
	def    *Definition
	client iris.Client
	opts   Options
}

func (p *probe) Name() string {
	return p.def.Title
}

func (p *probe) Probe(ctx context.Context) ([]nagios.Metric, error) {
	return p.def.fn(ctx, p)
}

// metric returns a metric bound to the probe's context.
func (p *probe) metric(label string, value float64) nagios.Metric {
	return nagios.NewMetric(label, value, p.def.Context)
}
