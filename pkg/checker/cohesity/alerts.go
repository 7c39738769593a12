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

package cohesity

import (
	"context"
	"fmt"
	"time"

	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	log "github.com/sirupsen/logrus"
)

const (
	maxAlertsDay    = 1000
	maxHealthAlerts = 100
)

func probeAlerts(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	now := p.opts.now()

	alerts, err := p.client.GetAlerts(ctx, &iris.AlertQuery{
		States:         []string{iris.AlertStateOpen},
		StartDateUsecs: now.Add(-hoursPerDay * time.Hour).UnixMicro(),
		EndDateUsecs:   now.UnixMicro(),
		MaxAlerts:      maxAlertsDay,
	})
	if err != nil {
		return nil, fmt.Errorf("get alerts: %w", err)
	}

	critical := countSeverity(alerts, iris.SeverityCritical)
	warning := countSeverity(alerts, iris.SeverityWarning)

	if critical > 0 || warning > 0 {
		log.Infof("Cluster ip = %s: There are %d alerts in critical status and %d alerts in warning status in the past day",
			p.opts.ClusterVIP, critical, warning)
	} else {
		log.Infof("Cluster ip = %s: All alerts are in info status or no alerts exist in the past day", p.opts.ClusterVIP)
	}

	return []nagios.Metric{p.metric("Alerts with issues", float64(critical+warning)).WithMin(0)}, nil
}

func probeClusterHealth(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	alerts, err := p.client.GetAlerts(ctx, &iris.AlertQuery{
		States:     []string{iris.AlertStateOpen},
		Categories: []string{iris.CategoryClusterHealth},
		MaxAlerts:  maxHealthAlerts,
	})
	if err != nil {
		return nil, fmt.Errorf("get cluster health alerts: %w", err)
	}

	bad := countSeverity(alerts, iris.SeverityCritical) + countSeverity(alerts, iris.SeverityWarning)

	if bad == 0 {
		log.Infof("Cluster ip = %s: Cluster is in an OK status", p.opts.ClusterVIP)
	} else {
		log.Infof("Cluster ip = %s: %d cluster health alerts returned an unhealthy status", p.opts.ClusterVIP, bad)
	}

	return []nagios.Metric{p.metric("Unhealthy cluster alerts", float64(bad)).WithMin(0)}, nil
}

func probeNodeAlerts(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	alerts, err := p.client.GetAlerts(ctx, &iris.AlertQuery{
		States:     []string{iris.AlertStateOpen},
		Severities: []string{iris.SeverityCritical},
		Categories: []string{iris.CategoryNodeHealth},
		MaxAlerts:  maxHealthAlerts,
	})
	if err != nil {
		return nil, fmt.Errorf("get node health alerts: %w", err)
	}

	bad := len(alerts)

	if bad == 0 {
		log.Infof("Cluster ip = %s: All nodes are in a NON CRITICAL status", p.opts.ClusterVIP)
	} else {
		log.Infof("Cluster ip = %s: %d node alerts returned an unhealthy status", p.opts.ClusterVIP, bad)
	}

	return []nagios.Metric{p.metric("Unhealthy nodes", float64(bad)).WithMin(0)}, nil
}

func countSeverity(alerts []iris.Alert, severity string) int {
	n := 0

	for i := range alerts {
		if alerts[i].Severity == severity {
			n++
		}
	}

	return n
}
