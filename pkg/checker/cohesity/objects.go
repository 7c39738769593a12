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

	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/mfreeman451/cohesity-checks/pkg/ratio"
	log "github.com/sirupsen/logrus"
)

type objectCounts struct {
	protected   int64
	unprotected int64
}

func (o objectCounts) total() int64 {
	return o.protected + o.unprotected
}

func getObjectCounts(ctx context.Context, p *probe) (objectCounts, error) {
	info, err := p.client.GetRegistrationInfo(ctx)
	if err != nil {
		return objectCounts{}, fmt.Errorf("get registration info: %w", err)
	}

	var counts objectCounts

	for _, env := range info.StatsByEnv {
		counts.protected += env.ProtectedCount
		counts.unprotected += env.UnprotectedCount
	}

	return counts, nil
}

// probeObjectsProtected fails when no sources are registered.
func probeObjectsProtected(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	counts, err := getObjectCounts(ctx, p)
	if err != nil {
		return nil, err
	}

	pct, err := ratio.Percentage(float64(counts.protected), float64(counts.total()))
	if err != nil {
		return nil, fmt.Errorf("no registered sources: %w", err)
	}

	log.Infof("Cluster ip = %s: Percentage of sources protected %d %%", p.opts.ClusterVIP, pct)

	return []nagios.Metric{percentMetric(p, "Percentage of sources protected", float64(pct))}, nil
}

// probeObjectsUnprotected reports 0 when no sources are registered.
func probeObjectsUnprotected(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	counts, err := getObjectCounts(ctx, p)
	if err != nil {
		return nil, err
	}

	pct := ratio.PercentageOrZero(float64(counts.unprotected), float64(counts.total()))

	log.Infof("Cluster ip = %s: Percentage of sources unprotected %d %%", p.opts.ClusterVIP, pct)

	return []nagios.Metric{percentMetric(p, "Percentage of sources unprotected", float64(pct))}, nil
}
