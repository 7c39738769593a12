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
	"math"

	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/mfreeman451/cohesity-checks/pkg/ratio"
	log "github.com/sirupsen/logrus"
)

const percentUnit = "%"

// probeStorage propagates a zero capacity as an error: it means the cluster
// returned unusable statistics, not an empty cluster.
func probeStorage(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	cluster, err := p.client.GetCluster(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get cluster: %w", err)
	}

	if cluster.Stats == nil || cluster.Stats.UsagePerfStats == nil {
		return nil, fmt.Errorf("%w: stats.usagePerfStats", iris.ErrMissingField)
	}

	usage := cluster.Stats.UsagePerfStats

	used, err := ratio.Percentage(float64(usage.TotalPhysicalUsageBytes), float64(usage.PhysicalCapacityBytes))
	if err != nil {
		return nil, fmt.Errorf("physical capacity of %d bytes: %w", usage.PhysicalCapacityBytes, err)
	}

	log.Infof("Cluster ip = %s: Cluster storage is %d %% used", p.opts.ClusterVIP, used)

	return []nagios.Metric{percentMetric(p, "Cluster used storage", float64(used))}, nil
}

func probeMetadata(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	cluster, err := p.client.GetCluster(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("get cluster: %w", err)
	}

	if cluster.UsedMetadataSpacePct == nil {
		return nil, fmt.Errorf("%w: usedMetadataSpacePct", iris.ErrMissingField)
	}

	used := math.Trunc(*cluster.UsedMetadataSpacePct)

	log.Infof("Cluster ip = %s: Cluster Metadata storage is %v %% used", p.opts.ClusterVIP, used)

	return []nagios.Metric{percentMetric(p, "Cluster used Metadata storage", used)}, nil
}

func probeReduction(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	cluster, err := p.client.GetCluster(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("get cluster: %w", err)
	}

	if cluster.Stats == nil || cluster.Stats.DataReductionRatio == nil {
		return nil, fmt.Errorf("%w: stats.dataReductionRatio", iris.ErrMissingField)
	}

	r := math.Trunc(*cluster.Stats.DataReductionRatio)

	log.Infof("Cluster ip = %s: Cluster reduction ratio is %v", p.opts.ClusterVIP, r)

	return []nagios.Metric{p.metric("Reduction ratio", r).WithMin(0)}, nil
}

func percentMetric(p *probe, label string, value float64) nagios.Metric {
	return p.metric(label, value).WithUnit(percentUnit).WithMin(0).WithMax(100)
}
