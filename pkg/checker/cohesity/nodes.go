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

	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	"github.com/mfreeman451/cohesity-checks/pkg/nodes"
	log "github.com/sirupsen/logrus"
)

func probeNodeCount(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	listed, err := p.client.GetNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get nodes: %w", err)
	}

	cluster, err := p.client.GetCluster(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("get cluster: %w", err)
	}

	missing := cluster.NodeCount - len(listed)

	if missing == 0 {
		log.Infof("Cluster ip = %s: All %d nodes are active on the cluster", p.opts.ClusterVIP, len(listed))
	} else {
		log.Infof("Cluster ip = %s: %d nodes are not active on the cluster", p.opts.ClusterVIP, missing)
	}

	return []nagios.Metric{p.metric("Unhealthy nodes", float64(missing)).WithMin(0)}, nil
}

func probeNodeActivity(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	status, err := p.client.GetClusterStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("get cluster status: %w", err)
	}

	activity := nodes.ComputeActivity(iris.NodeRecords(status))

	log.Infof("Cluster ip = %s: %d of %d nodes are active", p.opts.ClusterVIP, activity.Active, activity.Total)

	return []nagios.Metric{
		p.metric("Inactive nodes", float64(activity.Inactive())).WithMin(0).WithMax(float64(activity.Total)),
	}, nil
}
