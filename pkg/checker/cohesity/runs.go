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
	"github.com/mfreeman451/cohesity-checks/pkg/protection"
	log "github.com/sirupsen/logrus"
)

const (
	// maxRuns asks the cluster for every run in the window.
	maxRuns = 1_000_000_000_000
	// maxLoggedFailures caps the failure details logged per run type.
	maxLoggedFailures = 5
	policyMargin      = hoursPerDay * time.Hour
)

func probeProtectionRuns(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	days := p.opts.days()

	window, err := protection.LastDays(p.opts.now(), days)
	if err != nil {
		return nil, err
	}

	runs, err := p.client.GetProtectionRuns(ctx, &iris.ProtectionRunQuery{
		StartTimeUsecs: window.StartUsecs,
		EndTimeUsecs:   window.EndUsecs,
		NumRuns:        maxRuns,
	})
	if err != nil {
		return nil, fmt.Errorf("get protection runs: %w", err)
	}

	res := protection.Reconcile(iris.RunRecords(runs), window)

	if res.Failures() == 0 {
		log.Infof("Cluster ip = %s: In the past %d days, there are no backup/copy run failures", p.opts.ClusterVIP, days)
	} else {
		log.Infof("Cluster ip = %s: In the past %d days, there are %d backup run failures and %d copy run failures",
			p.opts.ClusterVIP, days, len(res.FailedBackups), len(res.FailedCopies))
		logFailures(res.FailedBackups)
		logFailures(res.FailedCopies)
	}

	if res.Skipped > 0 {
		log.Debugf("Cluster ip = %s: %d run outcomes had no statistics", p.opts.ClusterVIP, res.Skipped)
	}

	return []nagios.Metric{p.metric("Failed backup/copy runs", float64(res.Failures())).WithMin(0)}, nil
}

func probePolicyRuns(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	window, err := protection.WindowAround(p.opts.now(), policyMargin)
	if err != nil {
		return nil, err
	}

	runs, err := p.client.GetProtectionRuns(ctx, &iris.ProtectionRunQuery{})
	if err != nil {
		return nil, fmt.Errorf("get protection runs: %w", err)
	}

	res := protection.Reconcile(iris.RunRecords(runs), window)

	if res.Failures() == 0 {
		log.Infof("Cluster ip = %s: All %d protection runs (backup + copy run) are not in failure status",
			p.opts.ClusterVIP, res.Succeeded)
	} else {
		log.Infof("Cluster ip = %s: %d protection runs have failed and %d have passed",
			p.opts.ClusterVIP, res.Failures(), res.Succeeded)
		logFailures(res.FailedBackups)
		logFailures(res.FailedCopies)
	}

	return []nagios.Metric{p.metric("Failed protection runs", float64(res.Failures())).WithMin(0)}, nil
}

func logFailures(details []string) {
	if len(details) > maxLoggedFailures {
		details = details[:maxLoggedFailures]
	}

	for _, d := range details {
		log.Info(d)
	}
}
