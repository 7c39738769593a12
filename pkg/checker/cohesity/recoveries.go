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
	log "github.com/sirupsen/logrus"
)

// probeRecoveries treats a missing counter as no recoveries.
func probeRecoveries(ctx context.Context, p *probe) ([]nagios.Metric, error) {
	dashboard, err := p.client.GetDashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("get dashboard: %w", err)
	}

	var n int64

	if d := dashboard.Dashboard; d != nil && d.Recoveries != nil && d.Recoveries.LastMonthNumRecoveries != nil {
		n = *d.Recoveries.LastMonthNumRecoveries
	}

	if n > 0 {
		log.Infof("Cluster ip = %s: There are %d recoveries in the last 30 days", p.opts.ClusterVIP, n)
	} else {
		log.Infof("Cluster ip = %s: No recoveries in the last 30 days", p.opts.ClusterVIP)
	}

	return []nagios.Metric{p.metric("Recoveries last month", float64(n)).WithMin(0)}, nil
}
